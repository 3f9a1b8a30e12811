package ports

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendors and their
// performance history.
type VendorRepository interface {
	Add(ctx context.Context, v *vendor.Vendor) error

	// Update overwrites the vendor row. Metric writes are last-writer-wins.
	Update(ctx context.Context, v *vendor.Vendor) error

	// Get returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	GetAll(ctx context.Context) ([]*vendor.Vendor, error)

	// AddPerformanceRecord appends a metrics snapshot. Records are never updated.
	AddPerformanceRecord(ctx context.Context, record vendor.PerformanceRecord) error
}
