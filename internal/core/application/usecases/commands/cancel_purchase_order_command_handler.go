package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// CancelPurchaseOrderCommandHandler moves an unacknowledged pending order to
// cancelled. Cancellation records no event, so vendor metrics stay as they are.
type CancelPurchaseOrderCommandHandler struct {
	lifecycle lifecycle
}

func NewCancelPurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger zerolog.Logger,
) CancelPurchaseOrderCommandHandler {
	return CancelPurchaseOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, publisher, logger),
	}
}

func (h *CancelPurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelPurchaseOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := cmd.Actor().Require(kernel.RolePurchaser, "cancel purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	return h.lifecycle.transition(ctx, cmd.Actor(), cmd.OrderID(), func(order *purchaseorder.PurchaseOrder) error {
		return order.Cancel()
	})
}
