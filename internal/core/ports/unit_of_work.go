package ports

import (
	"context"

	"vendorflow/internal/core/domain/model/purchaseorder"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command, query or event handler.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained before Begin
// run against the plain connection; after Begin they share the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and collects the domain events recorded by
	// the aggregates saved through this unit of work.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Recorded events are dropped.
	Rollback(ctx context.Context) error

	// CommittedEvents returns, in save order, the events collected by the last
	// successful Commit.
	CommittedEvents() []purchaseorder.DomainEvent

	PurchaseOrderRepository() PurchaseOrderRepository
	VendorRepository() VendorRepository
}
