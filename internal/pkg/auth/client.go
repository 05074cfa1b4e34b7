// internal/pkg/auth/client.go
package auth

import (
	"context"
	"sync"
)

// Client is the per-session view of the local authenticator: it tracks
// the identity signed in on one app session and notifies that session's
// listeners on changes. Client implements Authenticator.
type Client struct {
	mu        sync.Mutex
	directory *Directory
	current   *Identity
	listeners map[int]func(*Identity)
	nextSubID int
}

var _ Authenticator = (*Client)(nil)

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (*Identity, error) {
	identity, err := c.directory.authenticate(creds)
	if err != nil {
		return nil, err
	}

	c.setCurrent(identity)
	return identity, nil
}

// SignUp registers a new account and signs it in on this session.
func (c *Client) SignUp(ctx context.Context, reg Registration) (*Identity, error) {
	identity, err := c.directory.register(reg)
	if err != nil {
		return nil, err
	}

	c.setCurrent(identity)
	return identity, nil
}

// SignOut tears down the current sign-in.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	signedIn := c.current != nil
	c.mu.Unlock()
	if !signedIn {
		return ErrNotSignedIn
	}

	c.setCurrent(nil)
	return nil
}

// CurrentUser returns the signed-in identity, or nil.
func (c *Client) CurrentUser() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

// OnAuthStateChanged registers a change listener and immediately delivers
// the current identity, matching the behavior mobile clients rely on.
func (c *Client) OnAuthStateChanged(fn func(*Identity)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.listeners[id] = fn
	current := c.current
	c.mu.Unlock()

	fn(current)

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Client) setCurrent(identity *Identity) {
	c.mu.Lock()
	c.current = identity
	listeners := make([]func(*Identity), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(identity)
	}
}
