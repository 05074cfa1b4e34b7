// internal/pkg/auth/directory.go
package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type account struct {
	uid          string
	email        string
	displayName  string
	passwordHash string
}

// Directory is the shared in-process account store behind the local
// authenticator. Accounts are kept in memory with bcrypt password hashes;
// one Directory serves every app session, each of which talks to it
// through its own Client.
type Directory struct {
	mu        sync.Mutex
	passwords *PasswordManager
	log       *logrus.Logger
	accounts  map[string]*account // keyed by lower-cased email
}

// NewDirectory creates an empty account directory.
func NewDirectory(passwords *PasswordManager, log *logrus.Logger) *Directory {
	return &Directory{
		passwords: passwords,
		log:       log,
		accounts:  make(map[string]*account),
	}
}

// Seed registers an account directly, for demo data in development.
func (d *Directory) Seed(email, password, displayName string) error {
	hash, err := d.passwords.HashPassword(password)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	key := strings.ToLower(email)
	if _, exists := d.accounts[key]; exists {
		return ErrEmailTaken
	}
	d.accounts[key] = &account{
		uid:          uuid.NewString(),
		email:        email,
		displayName:  displayName,
		passwordHash: hash,
	}
	return nil
}

// NewClient creates a per-session authentication client.
func (d *Directory) NewClient() *Client {
	return &Client{
		directory: d,
		listeners: make(map[int]func(*Identity)),
	}
}

func (d *Directory) authenticate(creds Credentials) (*Identity, error) {
	d.mu.Lock()
	acct, ok := d.accounts[strings.ToLower(creds.Email)]
	d.mu.Unlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := d.passwords.VerifyPassword(creds.Password, acct.passwordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		UID:         acct.uid,
		Email:       acct.email,
		DisplayName: acct.displayName,
	}, nil
}

func (d *Directory) register(reg Registration) (*Identity, error) {
	hash, err := d.passwords.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	key := strings.ToLower(reg.Email)
	if _, exists := d.accounts[key]; exists {
		return nil, ErrEmailTaken
	}
	acct := &account{
		uid:          uuid.NewString(),
		email:        reg.Email,
		displayName:  reg.DisplayName,
		passwordHash: hash,
	}
	d.accounts[key] = acct

	d.log.WithField("email", acct.email).Info("Account registered")

	return &Identity{
		UID:         acct.uid,
		Email:       acct.email,
		DisplayName: acct.displayName,
	}, nil
}
