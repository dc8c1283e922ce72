// Package persistence selects the credential storage backend.
package persistence

import (
	"log/slog"

	"cabradar/config"
	"cabradar/internal/domain/repository"
	"cabradar/internal/errors"
	"cabradar/internal/infra/persistence/memory"
	"cabradar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repository selector, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialRepository returns the backend named by storage.driver. The
// PostgreSQL connection is only opened when that driver is selected.
func NewCredentialRepository(params Params) (repository.CredentialRepository, error) {
	driver := config.StorageMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageMemory:
		params.Logger.Info("Using in-memory credential store")

		return memory.NewCredentialRepository(), nil
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL credential store")

		return postgres.NewCredentialRepository(db), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}
