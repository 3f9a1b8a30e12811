package purchaseorderrepo

import (
	"context"
	"errors"
	"fmt"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order only if the stored version matches the aggregate's, then
// advances both. Zero affected rows means the order is gone or was changed
// concurrently; the two cases are told apart with a second lookup.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	// Select("*") so that nil pointers clear their columns as well.
	result := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PurchaseOrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("purchaseOrderID", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause(
			"purchaseOrderVersion",
			fmt.Errorf("order %s is no longer at version %d", aggregate.ID(), aggregate.Version()),
		)
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a row lock that lasts until the surrounding transaction ends.
// Outside a transaction the lock is released immediately.
func (r *GormPurchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPurchaseOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchaseOrderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPurchaseOrderRepository) ListByVendor(ctx context.Context, vendorID kernel.UUID) ([]*purchaseorder.PurchaseOrder, error) {
	return r.list(ctx, "vendor_id = ?", vendorID.Bytes())
}

func (r *GormPurchaseOrderRepository) ListByPurchaser(ctx context.Context, purchaserID kernel.UUID) ([]*purchaseorder.PurchaseOrder, error) {
	return r.list(ctx, "purchaser_id = ?", purchaserID.Bytes())
}

func (r *GormPurchaseOrderRepository) ListByStatus(ctx context.Context, status purchaseorder.Status) ([]*purchaseorder.PurchaseOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, "status = ?", status.Code())
}

func (r *GormPurchaseOrderRepository) ListByVendorAndStatus(
	ctx context.Context,
	vendorID kernel.UUID,
	status purchaseorder.Status,
) ([]*purchaseorder.PurchaseOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, "vendor_id = ? AND status = ?", vendorID.Bytes(), status.Code())
}

// list returns matching orders, oldest issue first.
func (r *GormPurchaseOrderRepository) list(ctx context.Context, query string, args ...any) ([]*purchaseorder.PurchaseOrder, error) {
	var dtos []PurchaseOrderDTO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("issued_date ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormPurchaseOrderRepository) CountByVendor(ctx context.Context, vendorID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("vendor_id = ?", vendorID.Bytes()).
		Count(&count).Error
	return count, err
}

func (r *GormPurchaseOrderRepository) CountByVendorAndStatus(
	ctx context.Context,
	vendorID kernel.UUID,
	status purchaseorder.Status,
) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("vendor_id = ? AND status = ?", vendorID.Bytes(), status.Code()).
		Count(&count).Error
	return count, err
}

// responseTimeRow receives the aggregate of AverageResponseTime.
type responseTimeRow struct {
	AverageSeconds *float64
	Samples        int64
}

// AverageResponseTime averages acknowledged_date - issued_date in seconds.
func (r *GormPurchaseOrderRepository) AverageResponseTime(
	ctx context.Context,
	scope ports.ResponseTimeScope,
	vendorID kernel.UUID,
) (ports.ResponseTimeStats, error) {
	query := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Select("AVG(EXTRACT(EPOCH FROM (acknowledged_date - issued_date))) AS average_seconds, COUNT(*) AS samples").
		Where("acknowledged_date IS NOT NULL")

	switch scope {
	case ports.ResponseTimeGlobal:
	case ports.ResponseTimeVendor:
		if err := vendorID.Validate(); err != nil {
			return ports.ResponseTimeStats{}, err
		}
		query = query.Where("vendor_id = ?", vendorID.Bytes())
	default:
		return ports.ResponseTimeStats{}, errs.NewValueIsInvalidError("responseTimeScope")
	}

	var row responseTimeRow
	if err := query.Scan(&row).Error; err != nil {
		return ports.ResponseTimeStats{}, err
	}

	stats := ports.ResponseTimeStats{Samples: row.Samples}
	if row.AverageSeconds != nil {
		stats.AverageSeconds = *row.AverageSeconds
	}
	return stats, nil
}
