package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "csatapi/internal/errors"
)

func TestAccessGuard_Authorize(t *testing.T) {
	svc := NewJWTService("test-secret")
	guard := NewAccessGuard(svc, "admin")

	adminToken, err := svc.Issue("admin", time.Hour)
	assert.NoError(t, err)
	otherToken, err := svc.Issue("intruder", time.Hour)
	assert.NoError(t, err)
	expiredToken, err := svc.Issue("admin", 0)
	assert.NoError(t, err)
	foreignToken, err := NewJWTService("other-secret").Issue("admin", time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{"admin subject allowed", adminToken, nil},
		{"wrong subject forbidden", otherToken, apperrors.ErrForbidden},
		{"expired token unauthenticated", expiredToken, apperrors.ErrUnauthenticated},
		{"bad signature unauthenticated", foreignToken, apperrors.ErrUnauthenticated},
		{"garbage token unauthenticated", "not-a-token", apperrors.ErrUnauthenticated},
		{"empty token unauthenticated", "", apperrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := guard.Authorize(tt.token)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, subject)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "admin", subject)
			}
		})
	}
}

func TestAccessGuard_SubjectComparisonIsCaseSensitive(t *testing.T) {
	svc := NewJWTService("test-secret")
	guard := NewAccessGuard(svc, "Admin")

	token, err := svc.Issue("admin", time.Hour)
	assert.NoError(t, err)

	_, err = guard.Authorize(token)
	assert.Equal(t, apperrors.ErrForbidden, err)
}
