package service

import (
	"context"
	"crypto/subtle"
	"time"

	"csatapi/internal/auth"
	apperrors "csatapi/internal/errors"
)

// AuthService authenticates the single configured administrator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	jwtService    *auth.JWTService
	adminUsername string
	adminPassword string
	tokenTTL      time.Duration
}

// NewAuthService creates a new authentication service. Credentials come from
// configuration; exactly one valid subject exists system-wide.
func NewAuthService(jwtService *auth.JWTService, adminUsername, adminPassword string, tokenTTL time.Duration) AuthService {
	return &authService{
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		tokenTTL:      tokenTTL,
	}
}

// Login checks the credentials and issues a token whose subject is the admin
// username. Both comparisons run unconditionally to keep timing uniform.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(s.adminUsername, s.tokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
