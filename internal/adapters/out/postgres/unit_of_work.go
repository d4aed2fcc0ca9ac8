// Package postgres provides the GORM-based Unit of Work and the schema migration
// for the mart delivery store.
//
// Every command handler obtains a fresh unit of work from the factory, begins a
// transaction and reads and writes through the repositories it hands out:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck // no-op after commit
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run on the plain connection.
package postgres

import (
	"context"

	"martdelivery/internal/adapters/out/postgres/martrepo"
	"martdelivery/internal/adapters/out/postgres/orderrepo"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	// pending holds writes of the open transaction, committed those of the last successful Commit
	pending   []trackedAggregate
	committed []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageUnavailableError("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.pending = nil
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction if none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	written := uow.pending
	uow.pending, uow.committed = nil, nil
	if err != nil {
		return errs.NewStorageUnavailableError("commit transaction", err)
	}
	uow.committed = written
	return nil
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction if none is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.pending = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MartRepository() ports.MartRepository {
	return martrepo.NewGormMartRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within the open transaction.
// Repositories call it after every successful Add or Update; writes made outside a
// transaction are not tracked.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	if uow.tx == nil {
		return
	}
	uow.pending = append(uow.pending, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// CommittedOrders returns the orders made durable by the last successful Commit, once
// each, in the order they were first written. It is empty after a rollback or a failed commit.
func (uow *GormUnitOfWork) CommittedOrders() []*order.Order {
	orders := make([]*order.Order, 0, len(uow.committed))
	seen := make(map[kernel.UUID]int, len(uow.committed))
	for _, tracked := range uow.committed {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if i, dup := seen[tracked.ID]; dup {
			orders[i] = o
			continue
		}
		seen[tracked.ID] = len(orders)
		orders = append(orders, o)
	}
	return orders
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
