package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// RatePurchaseOrderCommandHandler stores the purchaser's quality rating on a
// delivered order. Rating again overwrites the previous value.
type RatePurchaseOrderCommandHandler struct {
	lifecycle lifecycle
	scale     purchaseorder.RatingScale
	clock     ports.Clock
}

func NewRatePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	scale purchaseorder.RatingScale,
	clock ports.Clock,
	logger zerolog.Logger,
) RatePurchaseOrderCommandHandler {
	return RatePurchaseOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, publisher, logger),
		scale:     scale,
		clock:     clock,
	}
}

func (h *RatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RatePurchaseOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := cmd.Actor().Require(kernel.RolePurchaser, "rate purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	rating := cmd.Rating()
	return h.lifecycle.transition(ctx, cmd.Actor(), cmd.OrderID(), func(order *purchaseorder.PurchaseOrder) error {
		return order.Rate(rating, h.scale, h.clock.Now())
	})
}
