// Package performance recomputes the rolling metrics of a vendor whenever a
// purchase-order event is published. Every handler re-aggregates from the order
// store and overwrites one metric; nothing is updated incrementally.
package performance

import (
	"context"
	"errors"
	"fmt"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/domain/model/vendor"
	"vendorflow/internal/core/domain/services"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

var ErrEventWithoutOrder = errors.New("event carries no purchase order")

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW is the transaction a single recalculation runs in.
	UoW interface {
		TxManager
		PurchaseOrderRepository() ports.PurchaseOrderRepository
		VendorRepository() ports.VendorRepository
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Recalculator owns the four metric handlers. Register subscribes them on a bus:
//
//	bus := eventbus.New(logger, busMetrics)
//	performance.NewRecalculator(uowFactory, calculator, ports.ResponseTimeGlobal, logger).Register(bus)
type Recalculator struct {
	uowFactory UoWFactory
	calculator services.PerformanceCalculator
	scope      ports.ResponseTimeScope
	logger     zerolog.Logger
}

func NewRecalculator(
	uowFactory UoWFactory,
	calculator services.PerformanceCalculator,
	scope ports.ResponseTimeScope,
	logger zerolog.Logger,
) *Recalculator {
	return &Recalculator{
		uowFactory: uowFactory,
		calculator: calculator,
		scope:      scope,
		logger:     logger.With().Str("component", "performance").Logger(),
	}
}

// Register subscribes one handler per event kind.
func (r *Recalculator) Register(sub ports.EventSubscriber) {
	sub.Subscribe(purchaseorder.EventAcknowledged, r.OnAcknowledged)
	sub.Subscribe(purchaseorder.EventDelivered, r.OnDelivered)
	sub.Subscribe(purchaseorder.EventStatusChanged, r.OnStatusChanged)
	sub.Subscribe(purchaseorder.EventRatingProvided, r.OnRatingProvided)
}

// OnAcknowledged recomputes the average response time, in days. With the global
// scope the mean covers every acknowledged order of every vendor.
func (r *Recalculator) OnAcknowledged(ctx context.Context, event ports.Event) error {
	return r.recompute(ctx, event, "average_response_time",
		func(ctx context.Context, orders ports.PurchaseOrderRepository, v *vendor.Vendor) (bool, error) {
			stats, err := orders.AverageResponseTime(ctx, r.scope, v.ID())
			if err != nil {
				return false, err
			}
			days, ok := r.calculator.AverageResponseTimeDays(stats.AverageSeconds, stats.Samples)
			if !ok {
				return false, nil
			}
			return true, v.UpdateAverageResponseTime(days)
		})
}

// OnDelivered recomputes the on-time delivery rate over the vendor's delivered orders.
func (r *Recalculator) OnDelivered(ctx context.Context, event ports.Event) error {
	return r.recompute(ctx, event, "on_time_delivery_rate",
		func(ctx context.Context, orders ports.PurchaseOrderRepository, v *vendor.Vendor) (bool, error) {
			delivered, err := orders.ListByVendorAndStatus(ctx, v.ID(), purchaseorder.Delivered)
			if err != nil {
				return false, err
			}
			rate, ok := r.calculator.OnTimeDeliveryRate(delivered)
			if !ok {
				return false, nil
			}
			return true, v.UpdateOnTimeDeliveryRate(rate)
		})
}

// OnStatusChanged recomputes the fulfillment rate: delivered over all orders of the
// vendor, cancelled ones included.
func (r *Recalculator) OnStatusChanged(ctx context.Context, event ports.Event) error {
	return r.recompute(ctx, event, "fulfillment_rate",
		func(ctx context.Context, orders ports.PurchaseOrderRepository, v *vendor.Vendor) (bool, error) {
			total, err := orders.CountByVendor(ctx, v.ID())
			if err != nil {
				return false, err
			}
			delivered, err := orders.CountByVendorAndStatus(ctx, v.ID(), purchaseorder.Delivered)
			if err != nil {
				return false, err
			}
			rate, ok := r.calculator.FulfillmentRate(delivered, total)
			if !ok {
				return false, nil
			}
			return true, v.UpdateFulfillmentRate(rate)
		})
}

// OnRatingProvided recomputes the mean quality rating of the vendor's rated deliveries.
func (r *Recalculator) OnRatingProvided(ctx context.Context, event ports.Event) error {
	return r.recompute(ctx, event, "quality_rating_avg",
		func(ctx context.Context, orders ports.PurchaseOrderRepository, v *vendor.Vendor) (bool, error) {
			delivered, err := orders.ListByVendorAndStatus(ctx, v.ID(), purchaseorder.Delivered)
			if err != nil {
				return false, err
			}
			avg, ok := r.calculator.QualityRatingAverage(delivered)
			if !ok {
				return false, nil
			}
			return true, v.UpdateQualityRatingAvg(avg)
		})
}

// metricFunc updates one metric on v and reports whether anything changed.
type metricFunc func(ctx context.Context, orders ports.PurchaseOrderRepository, v *vendor.Vendor) (bool, error)

func (r *Recalculator) recompute(ctx context.Context, event ports.Event, metric string, update metricFunc) error {
	vendorID, err := vendorOf(event)
	if err != nil {
		return err
	}

	uow := r.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	v, err := vendorRepo.Get(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("recompute %s: %w", metric, err)
	}

	changed, err := update(ctx, uow.PurchaseOrderRepository(), v)
	if err != nil {
		return fmt.Errorf("recompute %s: %w", metric, err)
	}
	if !changed {
		r.logger.Debug().Str("metric", metric).Str("vendor_id", vendorID.String()).Msg("no qualifying orders, metric left unchanged")
		return nil
	}

	if err = vendorRepo.Update(ctx, v); err != nil {
		return fmt.Errorf("save %s: %w", metric, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("save %s: %w", metric, err)
	}

	r.logger.Debug().Str("metric", metric).Str("vendor_id", vendorID.String()).Msg("vendor metric recomputed")
	return nil
}

func vendorOf(event ports.Event) (kernel.UUID, error) {
	if event.Vendor != nil {
		return event.Vendor.ID(), nil
	}
	if event.Order != nil {
		return event.Order.VendorID(), nil
	}
	return kernel.UUID{}, ErrEventWithoutOrder
}
