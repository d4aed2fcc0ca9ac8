package commands

import (
	"context"
	"time"

	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"
)

// CreateOrderCommandHandler places an order: it checks the mart, resolves the
// customer's address and stores the order as pending.
//
// The geocoder is called before the transaction is opened, so an unresolvable
// address (ports.ErrAddressNotFound) leaves nothing behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, geocoder ports.Geocoder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	if _, err := uow.MartRepository().Get(ctx, cmd.MartID()); err != nil {
		return nil, err
	}

	resolved, err := h.geocoder.Resolve(ctx, cmd.AddressText())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.MartID(),
		cmd.Items(),
		order.Address{
			Street:     cmd.AddressText(),
			City:       resolved.Components.City,
			PostalCode: resolved.PostalCode(),
			State:      resolved.Components.State,
			Country:    resolved.Components.Country,
			Location:   resolved.Point,
		},
		cmd.Phone(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
