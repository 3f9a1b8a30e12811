package queries

import (
	"context"

	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/errs"
)

// GetPurchaseOrderQueryHandler loads one order. Orders the actor may not see are
// reported as missing.
type GetPurchaseOrderQueryHandler struct {
	orders ports.PurchaseOrderRepository
}

func NewGetPurchaseOrderQueryHandler(orders ports.PurchaseOrderRepository) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{orders: orders}
}

func (h GetPurchaseOrderQueryHandler) Handle(ctx context.Context, query GetPurchaseOrderQuery) (PurchaseOrderView, error) {
	if err := query.Validate(); err != nil {
		return PurchaseOrderView{}, err
	}

	order, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return PurchaseOrderView{}, err
	}

	if !order.IsVisibleTo(query.Actor()) {
		return PurchaseOrderView{}, errs.NewObjectNotFoundError("purchaseOrderID", query.OrderID().String())
	}

	return NewPurchaseOrderView(order), nil
}
