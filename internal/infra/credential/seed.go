package credential

import (
	"context"
	"log/slog"

	"cabradar/config"
	"cabradar/internal/domain/repository"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"

	"go.uber.org/fx"
)

// SeedParams holds dependencies for seeding, injected by Fx.
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Store  service.CredentialStore
	Config *config.Config
	Logger *slog.Logger
}

// RegisterSeed registers the configured seed users when the app starts.
func RegisterSeed(params SeedParams) {
	if params.Config.Auth == nil || len(params.Config.Auth.SeedUsers) == 0 {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeds := make([]config.SeedUser, 0, len(params.Config.Auth.SeedUsers))
			for _, seed := range params.Config.Auth.SeedUsers {
				if seed.Name == "" {
					seed.Name = params.Config.Auth.DefaultName
				}
				seeds = append(seeds, seed)
			}

			return Seed(ctx, params.Store, seeds, params.Logger)
		},
	})
}

// Seed registers every seed user. Emails that already exist are skipped so a
// persistent store can be seeded on every start.
func Seed(ctx context.Context, store service.CredentialStore, seeds []config.SeedUser, logger *slog.Logger) error {
	for _, seed := range seeds {
		if seed.Email == "" || seed.Password == "" {
			return errors.Errorf("seed user %q needs an email and a password", seed.Email)
		}

		_, err := store.Register(ctx, seed.Email, seed.Password, seed.Name)
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			logger.Debug("Seed user already present", slog.String("email", seed.Email))

			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to seed user %s", seed.Email)
		}

		logger.Info("Seed user registered", slog.String("email", seed.Email))
	}

	return nil
}
