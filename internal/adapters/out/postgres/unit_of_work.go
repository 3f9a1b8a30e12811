// Package postgres provides the GORM implementation of the Unit of Work.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction once Begin was called, and directly on the
// connection pool otherwise. Every aggregate a repository adds or updates is
// tracked; on a successful Commit the domain events recorded by the tracked
// purchase orders are collected, cleared from the aggregates and exposed through
// CommittedEvents, so that callers publish only what was actually persisted.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = order.Deliver(now); err != nil {
//	    return err
//	}
//	if err = uow.PurchaseOrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//	if err = uow.Commit(ctx); err != nil {
//	    return err
//	}
//	publish(uow.CommittedEvents())
//
// Each UnitOfWork instance must be used by one goroutine only.
package postgres

import (
	"context"

	"vendorflow/internal/adapters/out/postgres/purchaseorderrepo"
	"vendorflow/internal/adapters/out/postgres/vendorrepo"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventRecorder is implemented by aggregates that record domain events.
type eventRecorder interface {
	DomainEvents() []purchaseorder.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory hands out a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction across the purchase order and vendor
// stores.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	committedEvents   []purchaseorder.DomainEvent
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.committedEvents = nil
	return nil
}

// Commit finalizes the transaction and, on success, collects the domain events of
// the tracked aggregates in tracking order.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.committedEvents = uow.collectEvents()
	return nil
}

// Rollback discards the transaction and everything tracked in it. After a Commit it
// returns gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// CommittedEvents returns the events collected by the last successful Commit.
func (uow *GormUnitOfWork) CommittedEvents() []purchaseorder.DomainEvent {
	return append([]purchaseorder.DomainEvent(nil), uow.committedEvents...)
}

func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VendorRepository() ports.VendorRepository {
	return vendorrepo.NewGormVendorRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// collectEvents drains each tracked aggregate once, even if it was written twice.
func (uow *GormUnitOfWork) collectEvents() []purchaseorder.DomainEvent {
	var events []purchaseorder.DomainEvent
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		if _, ok := seen[tracked.Aggregate]; ok {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}

		recorder, ok := tracked.Aggregate.(eventRecorder)
		if !ok {
			continue
		}
		events = append(events, recorder.DomainEvents()...)
		recorder.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}
