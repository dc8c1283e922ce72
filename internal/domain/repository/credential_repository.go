// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cabradar/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no credential exists for an email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when inserting an email that is already stored.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// CredentialRepository stores user credential records keyed by email.
type CredentialRepository interface {
	// Insert stores user unless its email is already present, atomically.
	// It returns ErrUserAlreadyExists and leaves the existing record untouched otherwise.
	Insert(ctx context.Context, user *entity.User) error

	// FindByEmail returns the record for email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
