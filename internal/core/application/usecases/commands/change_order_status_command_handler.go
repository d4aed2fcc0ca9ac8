package commands

import (
	"context"
	"log/slog"
	"time"

	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a lifecycle transition.
//
// The order row is locked for the duration of the transaction, so two concurrent
// transitions on one order are applied one after the other and the second one is
// validated against the status left by the first. After commit an
// OrderStatusChanged event is published for every order the unit of work committed;
// a failed publish is logged and does not undo the change.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates the handler. publisher may be nil when
// event publishing is disabled.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change-order-status"),
	}
}

// Handle returns the new status of the order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if err = o.ChangeStatus(cmd.Status(), cmd.AgentID(), time.Now().UTC()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	for _, committed := range uow.CommittedOrders() {
		if event, ok := statusChangedEvent(committed); ok {
			h.publish(ctx, event)
		}
	}

	return o.Status(), nil
}

// statusChangedEvent describes the latest transition of o. Orders that never left
// their initial status have none.
func statusChangedEvent(o *order.Order) (ports.OrderStatusChanged, bool) {
	history := o.History()
	if len(history) < 2 {
		return ports.OrderStatusChanged{}, false
	}

	previous, last := history[len(history)-2], history[len(history)-1]
	return ports.OrderStatusChanged{
		OrderID:   o.ID(),
		MartID:    o.MartID(),
		From:      previous.Status(),
		To:        last.Status(),
		AgentID:   o.Agent(),
		ChangedAt: last.ChangedAt(),
	}, true
}

func (h *ChangeOrderStatusCommandHandler) publish(ctx context.Context, event ports.OrderStatusChanged) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order status change",
			"orderId", event.OrderID.String(), "status", event.To.String(), "error", err)
	}
}
