package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"eventregistration/internal/domain"
)

const sessionAudience = "admin"

type sessionClaims struct {
	jwt.RegisteredClaims
}

type jwtSessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// JWTSessions issues and verifies HS256-signed admin session tokens.
type JWTSessions interface {
	domain.SessionIssuer
	domain.SessionVerifier
}

// NewJWTSessions returns session tokens signed with secret that expire after ttl.
func NewJWTSessions(secret string, ttl time.Duration) JWTSessions {
	return &jwtSessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *jwtSessions) Issue(username string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Audience:  jwt.ClaimStrings{sessionAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return tokenString, expiresAt, nil
}

func (s *jwtSessions) Verify(tokenString string) (*domain.AdminSession, error) {
	if tokenString == "" {
		return nil, domain.ErrInvalidSession
	}
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(sessionAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidSession
	}
	return &domain.AdminSession{
		ID:        claims.ID,
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
