// Package entity contains the core business objects of the project.
package entity

import "time"

// User is a stored credential record. Email is the unique, case-sensitive key.
type User struct {
	Email          string    // Login identifier.
	PasswordDigest string    // Output of the configured PasswordHasher, never the plaintext.
	Name           string    // Display name.
	CreatedAt      time.Time // Time the record was registered.
}
