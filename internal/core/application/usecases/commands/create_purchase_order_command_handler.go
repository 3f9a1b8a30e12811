package commands

import (
	"context"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// CreatePurchaseOrderCommandHandler issues a new pending order from a purchaser to
// an existing vendor.
//
// Example:
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory, clock.Real(), logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("purchase order creation failed: %w", err)
//	}
//	// result.Order is pending with version 1
type CreatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	logger     zerolog.Logger
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	logger zerolog.Logger,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger,
	}
}

// Handle creates the order in one transaction. Only purchasers may create orders.
// The items are checked before the referenced vendor is looked up.
func (h *CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	actor := cmd.Actor()
	if err := actor.Require(kernel.RolePurchaser, "create purchase orders"); err != nil {
		return TransitionResult{}, err
	}

	order, err := purchaseorder.NewPurchaseOrder(
		kernel.NewUUID(),
		actor.ID(),
		cmd.VendorID(),
		cmd.Items(),
		h.clock.Now(),
	)
	if err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.VendorRepository().Get(ctx, cmd.VendorID()); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, order); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	h.logger.Info().
		Str("order_id", order.ID().String()).
		Str("vendor_id", order.VendorID().String()).
		Int("quantity", order.Quantity()).
		Msg("purchase order created")

	return TransitionResult{Order: order}, nil
}
