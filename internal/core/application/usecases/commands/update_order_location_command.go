package commands

import (
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrUpdateOrderLocationCommandIsNotConstructed = errors.New(
	"UpdateOrderLocationCommand must be created via NewUpdateOrderLocationCommand constructor",
)

// UpdateOrderLocationCommand corrects the delivery point of an order.
type UpdateOrderLocationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateOrderLocationCommand requires both coordinates; a nil one is reported as missing.
func NewUpdateOrderLocationCommand(orderID kernel.UUID, lng, lat *float64) (UpdateOrderLocationCommand, error) {
	cmd := UpdateOrderLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocation(lng, lat),
	); err != nil {
		return UpdateOrderLocationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderLocationCommandIsNotConstructed)
}

func (c UpdateOrderLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateOrderLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderLocationCommand) setLocation(lng, lat *float64) error {
	if lng == nil || lat == nil {
		var missing []error
		if lng == nil {
			missing = append(missing, errs.NewValueIsRequiredError("lng"))
		}
		if lat == nil {
			missing = append(missing, errs.NewValueIsRequiredError("lat"))
		}
		return errors.Join(missing...)
	}

	location, err := kernel.NewGeoPoint(*lng, *lat)
	if err != nil {
		return err
	}
	c.location = location
	return nil
}
