package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
	ErrHistoryIsRequired     = errs.NewValueIsRequiredError("history")
	ErrOrderIsClosed         = fmt.Errorf("%w: order is delivered or cancelled", errs.ErrInvalidTransition)
)

// Order is a delivery unit placed at a mart.
//
// Invariants:
//   - the order references a mart and carries at least one item
//   - the delivery address has a valid GeoPoint
//   - status equals the status of the last history entry
//   - history only grows, through ChangeStatus
type Order struct {
	id      kernel.UUID
	martID  kernel.UUID
	items   []Item
	total   float64
	phone   string
	address Address

	status  Status
	history []HistoryEntry

	// agentID is the delivery agent currently responsible for the order (nil if none)
	agentID *kernel.UUID

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order with a single history entry stamped at createdAt.
// The total is computed from the items.
func NewOrder(
	id kernel.UUID,
	martID kernel.UUID,
	items []Item,
	address Address,
	phone string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		history:       []HistoryEntry{NewHistoryEntry(Pending, createdAt)},
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMartID(martID),
		o.setItems(items),
		o.setAddress(address),
		o.setPhone(phone),
	); err != nil {
		return nil, err
	}

	o.total = Total(o.items)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The status is taken from the last
// history entry so the two can never disagree. Orders stored before geocoding was
// mandatory may come back without a delivery point; they stay readable but are never routed.
func RestoreOrder(
	id kernel.UUID,
	martID kernel.UUID,
	items []Item,
	total float64,
	address Address,
	phone string,
	history []HistoryEntry,
	agentID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMartID(martID),
		o.setItems(items),
		o.setStoredAddress(address),
		o.setPhone(phone),
		o.setHistory(history),
		o.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) MartID() kernel.UUID {
	return o.martID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) Address() Address {
	return o.address
}

// Location is the resolved delivery point. It is the zero GeoPoint for legacy orders
// that were stored without one.
func (o *Order) Location() kernel.GeoPoint {
	return o.address.Location
}

func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the status history in order of occurrence.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// Agent returns the assigned delivery agent, or nil.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to next, appending a history entry stamped at.
// When agentID is given the order is (re)assigned to that agent as part of the same change.
func (o *Order) ChangeStatus(next Status, agentID *kernel.UUID, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err)
		}
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, NewHistoryEntry(newStatus, at))
	if agentID != nil {
		id := *agentID
		o.agentID = &id
	}
	return nil
}

// Relocate corrects the delivery point. Orders that reached a terminal status keep their location.
func (o *Order) Relocate(point kernel.GeoPoint) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !kernel.IsValidPoint(point) {
		return errs.NewValueIsInvalidErrorWithCause("location", kernel.ErrGeoPointIsNotConstructed)
	}
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	o.address.Location = point
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMartID(martID kernel.UUID) error {
	if err := martID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("martId", err)
	}
	o.martID = martID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setStoredAddress(address Address) error {
	if address.Street == "" {
		return errs.NewValueIsRequiredError("customerAddressText")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setHistory(history []HistoryEntry) error {
	if len(history) == 0 {
		return ErrHistoryIsRequired
	}
	for _, entry := range history {
		if err := entry.status.Validate(); err != nil {
			return err
		}
	}
	o.history = make([]HistoryEntry, len(history))
	copy(o.history, history)
	o.status = history[len(history)-1].status
	return nil
}

func (o *Order) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return err
	}
	id := *agentID
	o.agentID = &id
	return nil
}
