package commands

import (
	"errors"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along its lifecycle, optionally assigning
// the delivery agent in the same step.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	agentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses status from its wire name ("dispatched", ...).
// agentID may be nil.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status string, agentID *kernel.UUID) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setAgentID(agentID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ChangeOrderStatusCommand) AgentID() *kernel.UUID {
	return c.agentID
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}

func (c *ChangeOrderStatusCommand) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err)
	}
	id := *agentID
	c.agentID = &id
	return nil
}
