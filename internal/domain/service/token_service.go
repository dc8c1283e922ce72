package service

import (
	"time"

	"cabradar/internal/domain/entity"
)

// TokenService issues and verifies signed, time-bounded session tokens.
// Verification is stateless: it never looks up the credential store.
type TokenService interface {
	// Issue signs a token for the identity that expires one validity window after now.
	Issue(email, name string, now time.Time) (string, *entity.TokenClaims, error)

	// Verify accepts a raw token or an Authorization header value with an
	// optional "Bearer " prefix and returns its claims as of now.
	Verify(token string, now time.Time) (*entity.TokenClaims, error)
}
