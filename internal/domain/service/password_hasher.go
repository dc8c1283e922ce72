// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash turns a plaintext password into the digest that gets stored.
	Hash(password string) (string, error)

	// Check reports whether password produces digest.
	Check(password, digest string) bool
}
