package ports

import (
	"context"
	"errors"
	"regexp"

	"martdelivery/internal/core/domain/model/kernel"
)

// ErrAddressNotFound is returned by a Geocoder when the provider has no match for the text.
// It is distinct from transport failures, which are returned wrapped as they occur.
var ErrAddressNotFound = errors.New("address not found")

// AddressComponents are the administrative parts of a resolved address. Any of them may be empty.
type AddressComponents struct {
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// GeocodeResult is a resolved free-text address.
type GeocodeResult struct {
	Point            kernel.GeoPoint
	Components       AddressComponents
	FormattedAddress string
}

// Geocoder resolves a free-text address into a point and its components.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (GeocodeResult, error)
}

var postalCodePattern = regexp.MustCompile(`\b\d{6}\b`)

// ExtractPostalCode returns the first standalone six-digit token of a formatted
// address, or "" when there is none.
func ExtractPostalCode(formatted string) string {
	return postalCodePattern.FindString(formatted)
}

// PostalCode prefers the structured component and falls back to the formatted address.
func (r GeocodeResult) PostalCode() string {
	if r.Components.PostalCode != "" {
		return r.Components.PostalCode
	}
	return ExtractPostalCode(r.FormattedAddress)
}
