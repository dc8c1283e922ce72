package service

import (
	"context"

	"cabradar/internal/domain/entity"
)

// CredentialStore owns user records: it hashes passwords on the way in and
// rejects duplicate emails.
type CredentialStore interface {
	// Register hashes password and stores a new record for email.
	Register(ctx context.Context, email, password, name string) (*entity.User, error)

	// Find returns the record for email.
	Find(ctx context.Context, email string) (*entity.User, error)
}
