// Package ports defines the contracts between the core and its adapters:
// persistence, geocoding and event publishing.
package ports

import (
	"context"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Storage failures are reported as errs.StorageUnavailableError, missing orders as
// errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order together with its items and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, agent and location changes and appends history entries
	// that are not stored yet. Stored history entries are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and full history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Concurrent status changes on the same order are serialized by it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindPendingByMart returns the pending orders of a mart that have a delivery point,
	// oldest first. Orders with a missing coordinate are skipped.
	//
	// Example:
	//   orders, err := repo.FindPendingByMart(ctx, martID)
	//   if err != nil {
	//       return fmt.Errorf("failed to load pending orders: %w", err)
	//   }
	FindPendingByMart(ctx context.Context, martID kernel.UUID) ([]*order.Order, error)
}
