// Package commands contains the operations that change purchase orders and vendors.
// Every handler validates its command, runs inside one unit of work and, for
// lifecycle transitions, publishes the recorded events once the transaction is
// committed.
package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"
)

// Unit of Work interfaces narrowed to what the command handlers use.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// EventSource exposes the domain events collected by a successful commit.
	EventSource interface {
		CommittedEvents() []purchaseorder.DomainEvent
	}

	// UoW spans purchase orders and vendors in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   order, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate and Update
	//
	//   err = uow.Commit(ctx)
	//   events := uow.CommittedEvents()
	UoW interface {
		TxManager
		PurchaseOrderRepoFactory
		VendorRepoFactory
		EventSource
	}

	UoWFactory interface {
		Create() UoW
	}
)
