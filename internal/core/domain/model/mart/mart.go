package mart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var (
	// ErrMartIsNotConstructed is returned when using a Mart that was not built by NewMart or RestoreMart.
	ErrMartIsNotConstructed = errors.New("Mart must be created via NewMart constructor")
	// ErrNameIsRequired is returned when a mart is registered without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when a mart is registered without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrMartHasNoLocation is returned when a mart is used as a route depot before its
	// location was resolved.
	ErrMartHasNoLocation = fmt.Errorf("%w: mart has no usable location", errs.ErrInvalidMart)
)

// Mart is a store owned by a merchant.
//
// Business rules:
//   - id, owner, name and address are mandatory
//   - the location is optional; when present it is a valid GeoPoint
//   - only a mart with a location can serve as the depot of a delivery batch
type Mart struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	address string

	// location is the resolved depot; the zero GeoPoint means "not resolved yet"
	location kernel.GeoPoint

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewMart registers a mart. location may be the zero GeoPoint when the address
// could not be resolved.
func NewMart(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
	createdAt time.Time,
) (*Mart, error) {
	m := &Mart{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setOwnerID(ownerID),
		m.setName(name),
		m.setAddress(address),
		m.setOptionalLocation(location),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMart rebuilds a mart from persistence.
func RestoreMart(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
	createdAt time.Time,
) (*Mart, error) {
	return NewMart(id, ownerID, name, address, location, createdAt)
}

func (m *Mart) Validate() error {
	if m == nil {
		return ErrMartIsNotConstructed
	}
	return m.guard.Validate(ErrMartIsNotConstructed)
}

func (m *Mart) IsEqual(other *Mart) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Mart) ID() kernel.UUID {
	return m.id
}

func (m *Mart) OwnerID() kernel.UUID {
	return m.ownerID
}

func (m *Mart) Name() string {
	return m.name
}

func (m *Mart) Address() string {
	return m.address
}

func (m *Mart) CreatedAt() time.Time {
	return m.createdAt
}

// HasLocation reports whether the mart can be used as a route depot.
func (m *Mart) HasLocation() bool {
	return kernel.IsValidPoint(m.location)
}

// Location returns the depot point, or ErrMartHasNoLocation.
func (m *Mart) Location() (kernel.GeoPoint, error) {
	if !m.HasLocation() {
		return kernel.GeoPoint{}, ErrMartHasNoLocation
	}
	return m.location, nil
}

// SetLocation records a resolved depot point.
func (m *Mart) SetLocation(location kernel.GeoPoint) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !kernel.IsValidPoint(location) {
		return errs.NewValueIsInvalidErrorWithCause("location", kernel.ErrGeoPointIsNotConstructed)
	}
	m.location = location
	return nil
}

func (m *Mart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Mart) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	m.ownerID = ownerID
	return nil
}

func (m *Mart) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Mart) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	m.address = address
	return nil
}

func (m *Mart) setOptionalLocation(location kernel.GeoPoint) error {
	if location.Validate() != nil {
		return nil
	}
	if !kernel.IsValidPoint(location) {
		return errs.NewValueIsInvalidError("location")
	}
	m.location = location
	return nil
}
