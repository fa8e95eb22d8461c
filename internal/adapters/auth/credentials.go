package auth

import (
	"context"
	"crypto/subtle"

	"eventregistration/internal/domain"
)

type staticCredentialStore struct {
	username     string
	passwordHash string
	hasher       domain.PasswordHasher
}

// NewStaticCredentialStore returns a CredentialVerifier for a single admin identity.
// An empty passwordHash rejects every login.
func NewStaticCredentialStore(username, passwordHash string, hasher domain.PasswordHasher) domain.CredentialVerifier {
	return &staticCredentialStore{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
	}
}

func (s *staticCredentialStore) Verify(_ context.Context, username, password string) bool {
	if s.passwordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// Always run the hash comparison so timing does not reveal a valid username.
	passOK := s.hasher.Compare(s.passwordHash, password) == nil
	return userOK && passOK
}
