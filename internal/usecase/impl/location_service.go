package impl

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"
	"cabradar/internal/usecase"

	"github.com/paulmach/orb/geo"
)

type locationService struct {
	provider service.LocationProvider
}

// NewLocationService creates a new location service instance
func NewLocationService(provider service.LocationProvider) usecase.LocationUsecase {
	return &locationService{provider: provider}
}

// ListCars applies the type and proximity filters in that order.
func (s *locationService) ListCars(ctx context.Context, filter usecase.CarFilter) ([]entity.Car, error) {
	cars, err := s.provider.Cars(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cars")
	}

	result := make([]entity.Car, 0, len(cars))
	for _, car := range cars {
		if filter.Type != "" && car.Type != filter.Type {
			continue
		}
		if filter.Near != nil && geo.Distance(*filter.Near, car.Point()) > filter.RadiusMeters {
			continue
		}
		result = append(result, car)
	}

	if filter.Near != nil {
		origin := *filter.Near
		slices.SortStableFunc(result, func(a, b entity.Car) int {
			return cmp.Compare(geo.Distance(origin, a.Point()), geo.Distance(origin, b.Point()))
		})
	}

	return result, nil
}

// SearchPlaces filters place names by substring, ignoring case.
func (s *locationService) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	places, err := s.provider.Places(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load places")
	}

	if query == "" {
		n := min(usecase.DefaultSearchLimit, len(places))

		return append(make([]entity.Place, 0, n), places[:n]...), nil
	}

	needle := strings.ToLower(query)
	result := make([]entity.Place, 0, len(places))
	for _, place := range places {
		if strings.Contains(strings.ToLower(place.Name), needle) {
			result = append(result, place)
		}
	}

	return result, nil
}
