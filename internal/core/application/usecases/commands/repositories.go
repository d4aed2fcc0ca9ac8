// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a validating constructor, then a handler
// that manages the transaction and persists the result.
package commands

import (
	"context"

	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MartRepoFactory provides access to mart repository within a transaction.
	MartRepoFactory interface {
		MartRepository() ports.MartRepository
	}

	// CommitTracker reports what a unit of work made durable.
	CommitTracker interface {
		CommittedOrders() []*order.Order
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CommitTracker
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MartUoW manages transactions for mart-only operations.
	MartUoW interface {
		TxManager
		MartRepoFactory
	}

	// MartUoWFactory creates new mart unit of work instances.
	MartUoWFactory interface {
		Create() MartUoW
	}

	// UoW manages transactions across both order and mart aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   m, err := uow.MartRepository().Get(ctx, martID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		MartRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
