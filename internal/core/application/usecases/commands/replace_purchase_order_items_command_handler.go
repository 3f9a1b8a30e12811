package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReplacePurchaseOrderItemsCommandHandler swaps the item list of a pending,
// unacknowledged order. The quantity is recomputed from the new items.
type ReplacePurchaseOrderItemsCommandHandler struct {
	lifecycle lifecycle
}

func NewReplacePurchaseOrderItemsCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger zerolog.Logger,
) ReplacePurchaseOrderItemsCommandHandler {
	return ReplacePurchaseOrderItemsCommandHandler{
		lifecycle: newLifecycle(uowFactory, publisher, logger),
	}
}

func (h *ReplacePurchaseOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd ReplacePurchaseOrderItemsCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	if err := cmd.Actor().Require(kernel.RolePurchaser, "update purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	items := cmd.Items()
	return h.lifecycle.transition(ctx, cmd.Actor(), cmd.OrderID(), func(order *purchaseorder.PurchaseOrder) error {
		return order.ReplaceItems(items)
	})
}
