package order

import (
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
)

// Address is the customer's delivery address: the text the customer typed, the
// administrative components resolved by geocoding and the resolved point.
// Components may be empty; the point may not.
type Address struct {
	Street     string
	City       string
	PostalCode string
	State      string
	Country    string
	Location   kernel.GeoPoint
}

func (a Address) Validate() error {
	if a.Street == "" {
		return errs.NewValueIsRequiredError("customerAddressText")
	}
	if !kernel.IsValidPoint(a.Location) {
		return errs.NewValueIsRequiredErrorWithCause("customer location", kernel.ErrGeoPointIsNotConstructed)
	}
	return nil
}
