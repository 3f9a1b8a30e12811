// Package ports defines the contracts between the vendorflow core and its
// infrastructure: stores, unit of work, event publishing and time.
package ports

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
)

// ResponseTimeScope selects which acknowledged orders feed the average response time.
type ResponseTimeScope int

const (
	// ResponseTimeGlobal averages over every acknowledged order in the store.
	ResponseTimeGlobal ResponseTimeScope = iota
	// ResponseTimeVendor averages over the acknowledged orders of one vendor.
	ResponseTimeVendor
)

func (s ResponseTimeScope) String() string {
	switch s {
	case ResponseTimeGlobal:
		return "global"
	case ResponseTimeVendor:
		return "vendor"
	}
	return "unknown"
}

// ResponseTimeStats is the result of aggregating acknowledged_date - issued_date.
type ResponseTimeStats struct {
	// AverageSeconds is the mean delay, 0 when Samples is 0.
	AverageSeconds float64
	Samples        int64
}

// PurchaseOrderRepository defines the persistence contract for purchase orders.
// Get-style methods return *errs.ObjectNotFoundError for unknown ids.
type PurchaseOrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, order *purchaseorder.PurchaseOrder) error

	// Update persists a changed order if its stored version still equals
	// order.Version(), then advances the version. A stale order fails with
	// *errs.VersionIsInvalidError.
	Update(ctx context.Context, order *purchaseorder.PurchaseOrder) error

	// Get loads an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// GetForUpdate loads an order and locks its row until the surrounding
	// transaction ends, serializing transitions on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	ListByVendor(ctx context.Context, vendorID kernel.UUID) ([]*purchaseorder.PurchaseOrder, error)
	ListByPurchaser(ctx context.Context, purchaserID kernel.UUID) ([]*purchaseorder.PurchaseOrder, error)
	ListByStatus(ctx context.Context, status purchaseorder.Status) ([]*purchaseorder.PurchaseOrder, error)
	ListByVendorAndStatus(ctx context.Context, vendorID kernel.UUID, status purchaseorder.Status) ([]*purchaseorder.PurchaseOrder, error)

	CountByVendor(ctx context.Context, vendorID kernel.UUID) (int64, error)
	CountByVendorAndStatus(ctx context.Context, vendorID kernel.UUID, status purchaseorder.Status) (int64, error)

	// AverageResponseTime aggregates over acknowledged orders. vendorID is only
	// used with ResponseTimeVendor.
	AverageResponseTime(ctx context.Context, scope ResponseTimeScope, vendorID kernel.UUID) (ResponseTimeStats, error)
}
