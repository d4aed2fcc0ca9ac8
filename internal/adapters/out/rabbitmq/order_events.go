package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"martdelivery/internal/core/ports"
)

// RoutingKeyOrderStatusChanged is the routing key of order status events.
const RoutingKeyOrderStatusChanged = "order.status_changed"

type publisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

// OrderEventPublisher implements ports.OrderEventPublisher.
type OrderEventPublisher struct {
	client   publisher
	exchange string
}

func NewOrderEventPublisher(client publisher, exchange string) *OrderEventPublisher {
	return &OrderEventPublisher{client: client, exchange: exchange}
}

// OrderStatusChangedMessage is the JSON body of an order.status_changed message.
type OrderStatusChangedMessage struct {
	OrderID          string    `json:"orderId"`
	MartID           string    `json:"martId"`
	From             string    `json:"from"`
	To               string    `json:"to"`
	DeliveryPersonID *string   `json:"deliveryPersonId,omitempty"`
	ChangedAt        time.Time `json:"changedAt"`
}

func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	msg := OrderStatusChangedMessage{
		OrderID:   event.OrderID.String(),
		MartID:    event.MartID.String(),
		From:      event.From.String(),
		To:        event.To.String(),
		ChangedAt: event.ChangedAt.UTC(),
	}
	if event.AgentID != nil {
		id := event.AgentID.String()
		msg.DeliveryPersonID = &id
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("rabbitmq: encode order event: %w", err)
	}

	if err = p.client.Publish(ctx, p.exchange, RoutingKeyOrderStatusChanged, body); err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", RoutingKeyOrderStatusChanged, err)
	}
	return nil
}
