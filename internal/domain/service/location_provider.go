package service

import (
	"context"

	"cabradar/internal/domain/entity"
)

// LocationProvider is the read-only source of vehicle and place data.
type LocationProvider interface {
	Cars(ctx context.Context) ([]entity.Car, error)
	Places(ctx context.Context) ([]entity.Place, error)
}
