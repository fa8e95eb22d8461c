package domain

import (
	"context"
	"time"
)

// AdminSession is the authenticated admin identity carried by a verified session token.
type AdminSession struct {
	ID        string
	Username  string
	ExpiresAt time.Time
}

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// CredentialVerifier checks an admin username/password pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// SessionIssuer issues signed session tokens for an authenticated admin.
type SessionIssuer interface {
	Issue(username string) (token string, expiresAt time.Time, err error)
}

// SessionVerifier verifies a session token and returns the session it carries.
type SessionVerifier interface {
	Verify(token string) (*AdminSession, error)
}

// AdminService defines admin authentication.
type AdminService interface {
	// Login returns a session token. ErrMissingCredentials when a field is blank, ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
}
