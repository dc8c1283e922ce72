package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"cabradar/internal/domain/service"
)

// sha256Hasher stores the lowercase hex SHA-256 of the raw password bytes.
// It is unsalted and deterministic so digests stay compatible with existing
// credential records.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return sha256Hasher{}
}

// Hash never fails; the error is part of the PasswordHasher contract.
func (sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check compares digests in constant time.
func (h sha256Hasher) Check(password, digest string) bool {
	computed, _ := h.Hash(password)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
