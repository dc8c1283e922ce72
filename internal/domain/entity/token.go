package entity

import "time"

// TokenClaims is the identity carried inside a signed token.
type TokenClaims struct {
	Email     string
	Name      string
	ExpiresAt time.Time
}
