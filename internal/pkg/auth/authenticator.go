// internal/pkg/auth/authenticator.go
package auth

import (
	"context"
	"errors"
)

// Sentinel errors for the authentication boundary. All of them are
// reported to the user as non-fatal notifications; session state is never
// touched on failure.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrNotSignedIn        = errors.New("no user is signed in")
)

// Identity describes an authenticated user as reported by the provider.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Credentials carry a sign-in request.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Registration carries a sign-up request.
type Registration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

// Authenticator is the external authentication collaborator. The local
// in-process implementation below backs development; a production build
// would wire a hosted identity provider behind the same interface.
type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (*Identity, error)
	SignUp(ctx context.Context, reg Registration) (*Identity, error)
	SignOut(ctx context.Context) error
	CurrentUser() *Identity

	// OnAuthStateChanged registers a listener that receives the current
	// identity (nil when signed out) whenever it changes. The returned
	// function unsubscribes the listener.
	OnAuthStateChanged(fn func(*Identity)) (unsubscribe func())
}
