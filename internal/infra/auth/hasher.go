package auth

import (
	"cabradar/config"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"
)

// NewPasswordHasher picks the hasher named by auth.hasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.Auth == nil {
		return NewSHA256Hasher(), nil
	}

	switch cfg.Auth.Hasher {
	case "", config.HasherSHA256:
		return NewSHA256Hasher(), nil
	case config.HasherBcrypt:
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unknown password hasher: %s", cfg.Auth.Hasher)
	}
}
