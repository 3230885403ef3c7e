// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"

	"github.com/pkg/errors"
)

const (
	earthRadiusKm = 6371.0

	// MinLatitude and friends bound the coordinate space accepted anywhere in the system.
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrInvalidCoordinates is returned when a latitude/longitude pair is outside valid bounds.
var ErrInvalidCoordinates = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")

// GeoPoint represents a geographic coordinate in decimal degrees.
// Entities without a GeoPoint are excluded from any geo query.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the point lies within valid geographic bounds.
// NaN and infinities are rejected before the range check.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return ErrInvalidCoordinates
	}

	if p.Latitude < MinLatitude || p.Latitude > MaxLatitude ||
		p.Longitude < MinLongitude || p.Longitude > MaxLongitude {
		return ErrInvalidCoordinates
	}

	return nil
}

// DistanceKm calculates the great circle distance to another point in kilometers
// using the haversine formula. Full precision is retained; callers that need a
// display value should pass the result through RoundKm.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1Rad := p.Latitude * math.Pi / 180
	lng1Rad := p.Longitude * math.Pi / 180
	lat2Rad := other.Latitude * math.Pi / 180
	lng2Rad := other.Longitude * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for display stability.
func RoundKm(distanceKm float64) float64 {
	return math.Round(distanceKm*100) / 100
}
