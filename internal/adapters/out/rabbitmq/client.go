// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultConfirmTimeout bounds how long Publish waits for the broker to confirm a message.
const DefaultConfirmTimeout = 5 * time.Second

var (
	ErrPublishNacked    = errors.New("rabbitmq: publish NACK from broker")
	ErrConnectionClosed = errors.New("rabbitmq: connection is closed")
)

// confirmation is the broker's answer to a single published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type confirmingChannel interface {
	publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
}

type amqpChannel struct {
	ch *amqp.Channel
}

func (a amqpChannel) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := a.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("rabbitmq: channel is not in confirm mode")
	}
	return dc, nil
}

// Client is a confirming publisher bound to one channel. Each message carries its
// own deferred confirmation, so concurrent publishes never read each other's acks.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel

	channel        confirmingChannel
	confirmTimeout time.Duration
}

// Dial connects to url, enables publisher confirms and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %q: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: enable confirms: %w", err)
	}

	return &Client{
		conn:           conn,
		ch:             ch,
		channel:        amqpChannel{ch: ch},
		confirmTimeout: DefaultConfirmTimeout,
	}, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Ping reports whether the connection and its channel are still open.
func (c *Client) Ping(_ context.Context) error {
	if c == nil || c.conn == nil || c.conn.IsClosed() {
		return ErrConnectionClosed
	}
	if c.ch != nil && c.ch.IsClosed() {
		return ErrConnectionClosed
	}
	return nil
}

// Publish sends a persistent JSON message and waits for the broker's confirm of that message.
// The wait is detached from ctx cancellation and bounded by the confirm timeout instead, so a
// caller that goes away does not leave the confirm unread.
func (c *Client) Publish(ctx context.Context, exchange, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.confirmTimeout)
	defer cancel()

	conf, err := c.channel.publish(ctx, exchange, key, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq: wait for confirm: %w", err)
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}
