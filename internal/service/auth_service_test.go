package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"csatapi/internal/auth"
	apperrors "csatapi/internal/errors"
)

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(jwtService, "admin", "letmein", 30*time.Minute)

	tests := []struct {
		name          string
		username      string
		password      string
		expectedError error
	}{
		{"valid credentials", "admin", "letmein", nil},
		{"wrong password", "admin", "guessed", apperrors.ErrInvalidCredentials},
		{"wrong username", "root", "letmein", apperrors.ErrInvalidCredentials},
		{"username case mismatch", "Admin", "letmein", apperrors.ErrInvalidCredentials},
		{"both empty", "", "", apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			subject, err := jwtService.Verify(token)
			assert.NoError(t, err)
			assert.Equal(t, "admin", subject)
		})
	}
}
