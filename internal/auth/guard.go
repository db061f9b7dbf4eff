package auth

import (
	apperrors "csatapi/internal/errors"
)

// AccessGuard gates report access to exactly one configured subject.
type AccessGuard struct {
	tokens       *JWTService
	adminSubject string
}

// NewAccessGuard creates a guard that admits only adminSubject.
func NewAccessGuard(tokens *JWTService, adminSubject string) *AccessGuard {
	return &AccessGuard{
		tokens:       tokens,
		adminSubject: adminSubject,
	}
}

// Authorize verifies the token and checks its subject against the configured
// administrator. An invalid token of any kind (malformed, bad signature,
// expired) yields ErrUnauthenticated; a valid token with any other subject
// yields ErrForbidden. The two failures stay distinguishable so the transport
// layer can map them to 401 and 403.
func (g *AccessGuard) Authorize(token string) (string, error) {
	subject, err := g.tokens.Verify(token)
	if err != nil {
		return "", apperrors.ErrUnauthenticated
	}
	if subject != g.adminSubject {
		return "", apperrors.ErrForbidden
	}
	return subject, nil
}
