package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventregistration/internal/domain"
)

type adminService struct {
	credentials domain.CredentialVerifier
	sessions    domain.SessionIssuer
}

// NewAdminService creates an AdminService that checks credentials and issues session tokens.
func NewAdminService(credentials domain.CredentialVerifier, sessions domain.SessionIssuer) domain.AdminService {
	return &adminService{
		credentials: credentials,
		sessions:    sessions,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, domain.ErrMissingCredentials
	}
	if !s.credentials.Verify(ctx, username, password) {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}
	token, expiresAt, err := s.sessions.Issue(username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: %w", err)
	}
	return token, expiresAt, nil
}
