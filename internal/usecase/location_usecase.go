package usecase

import (
	"context"

	"cabradar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DefaultSearchLimit is how many places an empty search returns.
const DefaultSearchLimit = 5

// CarFilter narrows the vehicle list. The zero value matches every car.
type CarFilter struct {
	Type entity.CarType
	// Near and RadiusMeters keep cars within RadiusMeters of Near, nearest first.
	Near         *orb.Point
	RadiusMeters float64
}

// LocationUsecase defines read-only lookups over vehicle and place data.
type LocationUsecase interface {
	ListCars(ctx context.Context, filter CarFilter) ([]entity.Car, error)
	// SearchPlaces matches names case-insensitively by substring. An empty
	// query returns the first DefaultSearchLimit places.
	SearchPlaces(ctx context.Context, query string) ([]entity.Place, error)
}
