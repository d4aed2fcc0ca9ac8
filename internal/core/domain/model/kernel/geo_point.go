package kernel

import (
	"errors"
	"fmt"
	"math"

	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// ErrGeoPointIsNotConstructed is returned when a zero GeoPoint is used where a location is required.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint")

// GeoPoint is a validated (longitude, latitude) pair in decimal degrees.
// The zero value represents an absent location and fails Validate.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint builds a GeoPoint. Both coordinates must be finite and within
// [-180,180] for longitude and [-90,90] for latitude.
func NewGeoPoint(lon, lat float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// GeoPointFromNullable builds a GeoPoint from optional coordinates as stored by adapters.
// A point with either coordinate missing is treated as absent, never as zero.
func GeoPointFromNullable(lon, lat *float64) (GeoPoint, error) {
	if lon == nil || lat == nil {
		return GeoPoint{}, ErrGeoPointIsNotConstructed
	}
	return NewGeoPoint(*lon, *lat)
}

// IsValidPoint reports whether p is present and within valid coordinate ranges.
func IsValidPoint(p GeoPoint) bool {
	if p.Validate() != nil {
		return false
	}
	return validLon(p.lon) && validLat(p.lat)
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Lon() float64 {
	return p.lon
}

func (p GeoPoint) Lat() float64 {
	return p.lat
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p == other
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lon, p.lat)
}

func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return errs.NewValueIsInvalidErrorWithCause("lng", fmt.Errorf("%v is not a finite number", lon))
	}
	if !validLon(lon) {
		return errs.NewValueIsOutOfRangeError("lng", lon, MinLongitude, MaxLongitude)
	}
	p.lon = lon
	return nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("lat", fmt.Errorf("%v is not a finite number", lat))
	}
	if !validLat(lat) {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func validLon(v float64) bool {
	return !math.IsNaN(v) && v >= MinLongitude && v <= MaxLongitude
}

func validLat(v float64) bool {
	return !math.IsNaN(v) && v >= MinLatitude && v <= MaxLatitude
}
