package entity

import "github.com/paulmach/orb"

// CarType is the vehicle class shown on the booking map.
type CarType string

const (
	CarTypeEconomy CarType = "economy"
	CarTypePremium CarType = "premium"
	CarTypeSUV     CarType = "suv"
)

// Car is an available vehicle and its last known position.
type Car struct {
	ID   int     `json:"id"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type CarType `json:"type"`
}

// Point returns the car position as an orb point (lng, lat).
func (c Car) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Place is a named point of interest that can be searched by name.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
