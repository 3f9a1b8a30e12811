package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// DeliverPurchaseOrderCommandHandler completes an acknowledged order. The delivered
// and status-changed events drive the on-time and fulfillment rates.
type DeliverPurchaseOrderCommandHandler struct {
	lifecycle lifecycle
	clock     ports.Clock
}

func NewDeliverPurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger zerolog.Logger,
) DeliverPurchaseOrderCommandHandler {
	return DeliverPurchaseOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, publisher, logger),
		clock:     clock,
	}
}

func (h *DeliverPurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverPurchaseOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := cmd.Actor().Require(kernel.RoleVendor, "deliver purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	return h.lifecycle.transition(ctx, cmd.Actor(), cmd.OrderID(), func(order *purchaseorder.PurchaseOrder) error {
		return order.Deliver(h.clock.Now())
	})
}
