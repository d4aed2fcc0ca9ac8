package ports

import (
	"context"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
)

// OrderStatusChanged is emitted after a status change has been committed.
type OrderStatusChanged struct {
	OrderID   kernel.UUID
	MartID    kernel.UUID
	From      order.Status
	To        order.Status
	AgentID   *kernel.UUID
	ChangedAt time.Time
}

// OrderEventPublisher delivers order events to interested parties outside the service.
type OrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
