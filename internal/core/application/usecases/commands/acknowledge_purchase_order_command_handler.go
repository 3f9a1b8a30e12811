package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// AcknowledgePurchaseOrderCommandHandler records the vendor's acknowledgment and
// expected delivery date. On success the vendor's average response time is
// recomputed by the subscribed performance handler.
//
// Example:
//
//	handler := NewAcknowledgePurchaseOrderCommandHandler(uowFactory, bus, clock.Real(), logger)
//	cmd, _ := NewAcknowledgePurchaseOrderCommand(vendorActor, orderID, expected)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.HasWarning() {
//	    log.Warn(result.Warning)
//	}
type AcknowledgePurchaseOrderCommandHandler struct {
	lifecycle lifecycle
	clock     ports.Clock
}

func NewAcknowledgePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger zerolog.Logger,
) AcknowledgePurchaseOrderCommandHandler {
	return AcknowledgePurchaseOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, publisher, logger),
		clock:     clock,
	}
}

func (h *AcknowledgePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcknowledgePurchaseOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := cmd.Actor().Require(kernel.RoleVendor, "acknowledge purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	expected := cmd.ExpectedDeliveryDate()
	return h.lifecycle.transition(ctx, cmd.Actor(), cmd.OrderID(), func(order *purchaseorder.PurchaseOrder) error {
		return order.Acknowledge(expected, h.clock.Now())
	})
}
