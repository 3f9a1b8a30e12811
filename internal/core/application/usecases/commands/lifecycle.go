package commands

import (
	"context"
	"fmt"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/domain/model/vendor"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/errs"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// lifecycle runs one transition on one order:
// lock and load, check ownership, mutate, save, commit, then publish.
type lifecycle struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     zerolog.Logger
}

func newLifecycle(uowFactory UoWFactory, publisher ports.EventPublisher, logger zerolog.Logger) lifecycle {
	return lifecycle{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With().Str("component", "lifecycle").Logger(),
	}
}

// transition loads orderID under a row lock and applies mutate. Only the owner of
// the order sees it: any other actor gets *errs.ObjectNotFoundError, checked before
// the lifecycle rules.
func (l lifecycle) transition(
	ctx context.Context,
	actor kernel.Actor,
	orderID kernel.UUID,
	mutate func(order *purchaseorder.PurchaseOrder) error,
) (TransitionResult, error) {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	order, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}

	if !order.IsVisibleTo(actor) {
		return TransitionResult{}, errs.NewObjectNotFoundError("purchaseOrderID", orderID.String())
	}

	if err = mutate(order); err != nil {
		return TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return TransitionResult{}, err
	}

	var v *vendor.Vendor
	if len(order.DomainEvents()) > 0 {
		if v, err = uow.VendorRepository().Get(ctx, order.VendorID()); err != nil {
			return TransitionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		Order:   order,
		Warning: l.publish(ctx, order, v, uow.CommittedEvents()),
	}, nil
}

// publish hands every committed event to the bus, in recording order. Failures are
// combined into a single ErrMetricsWriteFailure warning.
func (l lifecycle) publish(
	ctx context.Context,
	order *purchaseorder.PurchaseOrder,
	v *vendor.Vendor,
	events []purchaseorder.DomainEvent,
) error {
	if l.publisher == nil || len(events) == 0 {
		return nil
	}

	var failures error
	for _, e := range events {
		if !e.OrderID().IsEqual(order.ID()) {
			continue
		}
		err := l.publisher.Publish(ctx, ports.Event{Kind: e.Kind(), Order: order, Vendor: v})
		failures = multierr.Append(failures, err)
	}
	if failures == nil {
		return nil
	}

	l.logger.Warn().
		Err(failures).
		Str("order_id", order.ID().String()).
		Str("vendor_id", order.VendorID().String()).
		Msg("transition committed, vendor metrics not updated")
	return fmt.Errorf("%w: %w", ErrMetricsWriteFailure, failures)
}
