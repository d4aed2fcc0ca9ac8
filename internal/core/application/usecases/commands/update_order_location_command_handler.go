package commands

import (
	"context"

	"martdelivery/internal/core/domain/model/order"
)

// UpdateOrderLocationCommandHandler relocates an order inside a transaction that
// holds the order's row lock.
type UpdateOrderLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderLocationCommandHandler(uowFactory OrderUoWFactory) UpdateOrderLocationCommandHandler {
	return UpdateOrderLocationCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated order.
func (h *UpdateOrderLocationCommandHandler) Handle(ctx context.Context, cmd UpdateOrderLocationCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Relocate(cmd.Location()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
