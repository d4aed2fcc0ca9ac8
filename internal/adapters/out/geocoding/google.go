// Package geocoding implements ports.Geocoder on top of external providers
// (Google Maps and OpenCage) and a Redis-backed cache that can wrap either of them.
package geocoding

import (
	"context"
	"fmt"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

type googleClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleMapsGeocoder resolves addresses with the Google Geocoding API.
type GoogleMapsGeocoder struct {
	client googleClient
}

// NewGoogleMapsGeocoder creates a geocoder for the given API key. Extra client options
// (for example maps.WithBaseURL) are passed through to the maps client.
func NewGoogleMapsGeocoder(apiKey string, opts ...maps.ClientOption) (*GoogleMapsGeocoder, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleMapsGeocoder{client: client}, nil
}

func (g *GoogleMapsGeocoder) Resolve(ctx context.Context, address string) (ports.GeocodeResult, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: google maps: %w", errs.ErrUpstreamUnavailable, err)
	}
	if len(results) == 0 {
		return ports.GeocodeResult{}, ports.ErrAddressNotFound
	}

	best := results[0]
	point, err := kernel.NewGeoPoint(best.Geometry.Location.Lng, best.Geometry.Location.Lat)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: google maps returned an invalid point: %w", errs.ErrUpstreamUnavailable, err)
	}

	return ports.GeocodeResult{
		Point:            point,
		Components:       googleComponents(best.AddressComponents),
		FormattedAddress: best.FormattedAddress,
	}, nil
}

// googleComponents picks the first component of each kind. A locality wins over a
// postal town, which wins over a sublocality.
func googleComponents(components []maps.AddressComponent) ports.AddressComponents {
	var (
		result   ports.AddressComponents
		cityRank = 0
	)

	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "locality":
				if cityRank < 3 {
					result.City, cityRank = c.LongName, 3
				}
			case "postal_town":
				if cityRank < 2 {
					result.City, cityRank = c.LongName, 2
				}
			case "sublocality":
				if cityRank < 1 {
					result.City, cityRank = c.LongName, 1
				}
			case "administrative_area_level_1":
				if result.State == "" {
					result.State = c.LongName
				}
			case "country":
				if result.Country == "" {
					result.Country = c.LongName
				}
			case "postal_code":
				if result.PostalCode == "" {
					result.PostalCode = c.LongName
				}
			}
		}
	}

	return result
}
