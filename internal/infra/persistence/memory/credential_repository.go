// Package memory keeps credentials in process memory. Records are lost on restart.
package memory

import (
	"context"
	"sync"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/repository"
)

type credentialRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewCredentialRepository returns an empty in-memory CredentialRepository.
func NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{
		users: make(map[string]entity.User),
	}
}

// Insert checks and inserts under one write lock.
func (r *credentialRepository) Insert(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	r.users[user.Email] = *user

	return nil
}

// FindByEmail returns a copy so callers cannot mutate the stored record.
func (r *credentialRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}
