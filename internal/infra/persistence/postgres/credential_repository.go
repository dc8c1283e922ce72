// Package postgres contains the persistent credential repository using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/repository"
	"cabradar/internal/errors"
	"cabradar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
// Uniqueness of the email is enforced by the primary key, so concurrent
// inserts of the same email cannot both succeed.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Insert persists user, mapping a primary key violation to ErrUserAlreadyExists.
func (repo *credentialRepository) Insert(ctx context.Context, user *entity.User) error {
	credentialM := toCredentialModel(user)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to insert credential")
	}

	return nil
}

// FindByEmail retrieves a credential by its email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var credentialM model.CredentialModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toUserDomain(&credentialM), nil
}

func toCredentialModel(user *entity.User) *model.CredentialModel {
	return &model.CredentialModel{
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
		Name:           user.Name,
		CreatedAt:      user.CreatedAt,
	}
}

func toUserDomain(credentialM *model.CredentialModel) *entity.User {
	return &entity.User{
		Email:          credentialM.Email,
		PasswordDigest: credentialM.PasswordDigest,
		Name:           credentialM.Name,
		CreatedAt:      credentialM.CreatedAt,
	}
}
