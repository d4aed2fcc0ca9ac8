package commands

import (
	"errors"
	"strings"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressTextIsRequired = errs.NewValueIsRequiredError("customerAddressText")
	ErrPhoneIsRequired       = errs.NewValueIsRequiredError("phone")
)

// CreateOrderCommand represents a customer placing an order at a mart.
// The delivery point is not part of the command: it is resolved from the address text.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, 30.5)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), martID, []order.Item{item},
//	    "12 MG Road, Bengaluru", "+919876543210")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	martID      kernel.UUID
	items       []order.Item
	addressText string
	phone       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order request. All failures are reported together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	martID kernel.UUID,
	items []order.Item,
	addressText string,
	phone string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMartID(martID),
		cmd.setItems(items),
		cmd.setAddressText(addressText),
		cmd.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) MartID() kernel.UUID {
	return c.martID
}

func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) AddressText() string {
	return c.addressText
}

func (c CreateOrderCommand) Phone() string {
	return c.phone
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setMartID(martID kernel.UUID) error {
	if err := martID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("martId", err)
	}
	c.martID = martID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setAddressText(addressText string) error {
	addressText = strings.TrimSpace(addressText)
	if addressText == "" {
		return ErrAddressTextIsRequired
	}
	c.addressText = addressText
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
