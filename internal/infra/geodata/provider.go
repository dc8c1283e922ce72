// Package geodata serves the fixed vehicle and place fixtures shown on the booking map.
package geodata

import (
	"context"
	"slices"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/service"
)

var defaultCars = []entity.Car{
	{ID: 1, Lat: 10.7905, Lng: 78.7047, Type: entity.CarTypeEconomy},
	{ID: 2, Lat: 10.7915, Lng: 78.7057, Type: entity.CarTypePremium},
	{ID: 3, Lat: 10.7885, Lng: 78.7037, Type: entity.CarTypeEconomy},
	{ID: 4, Lat: 10.7925, Lng: 78.7067, Type: entity.CarTypeSUV},
	{ID: 5, Lat: 10.7875, Lng: 78.7027, Type: entity.CarTypePremium},
	{ID: 6, Lat: 10.7935, Lng: 78.7077, Type: entity.CarTypeEconomy},
}

var defaultPlaces = []entity.Place{
	{Name: "Airport", Lat: 10.7654, Lng: 78.7097},
	{Name: "Railway Station", Lat: 10.8066, Lng: 78.7007},
	{Name: "Bus Stand", Lat: 10.8276, Lng: 78.6937},
	{Name: "Hospital", Lat: 10.7906, Lng: 78.7147},
	{Name: "Mall", Lat: 10.8006, Lng: 78.6847},
	{Name: "University", Lat: 10.7556, Lng: 78.7247},
	{Name: "Temple", Lat: 10.8156, Lng: 78.7097},
	{Name: "Market", Lat: 10.8226, Lng: 78.6947},
}

type staticProvider struct {
	cars   []entity.Car
	places []entity.Place
}

// NewStaticProvider returns the built-in fixture data.
func NewStaticProvider() service.LocationProvider {
	return NewProvider(defaultCars, defaultPlaces)
}

// NewProvider serves the given data. The slices are copied.
func NewProvider(cars []entity.Car, places []entity.Place) service.LocationProvider {
	return &staticProvider{
		cars:   slices.Clone(cars),
		places: slices.Clone(places),
	}
}

// Cars returns a copy of every vehicle in fixture order.
func (p *staticProvider) Cars(context.Context) ([]entity.Car, error) {
	return slices.Clone(p.cars), nil
}

// Places returns a copy of every place in fixture order.
func (p *staticProvider) Places(context.Context) ([]entity.Place, error) {
	return slices.Clone(p.places), nil
}
