// Package credential implements the credential store on top of a
// CredentialRepository and a PasswordHasher.
package credential

import (
	"context"
	"log/slog"
	"time"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/repository"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the credential store, injected by Fx.
type StoreParams struct {
	fx.In

	Repo   repository.CredentialRepository
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

type store struct {
	repo   repository.CredentialRepository
	hasher service.PasswordHasher
	logger *slog.Logger
	now    func() time.Time
}

// NewStore is the constructor for the credential store.
func NewStore(params StoreParams) service.CredentialStore {
	return &store{
		repo:   params.Repo,
		hasher: params.Hasher,
		logger: params.Logger,
		now:    time.Now,
	}
}

// Register hashes the password and inserts the record if the email is free.
func (s *store) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:          email,
		PasswordDigest: digest,
		Name:           name,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to insert credential")
	}

	return user, nil
}

// Find returns the stored record for email.
func (s *store) Find(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return user, nil
}
