package queries

import (
	"context"
	"sort"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"
)

// ListPurchaseOrdersQueryHandler lists orders scoped to the actor: vendors see the
// orders issued to them, purchasers the orders they placed and admins every order.
// Results are ordered by issue date.
type ListPurchaseOrdersQueryHandler struct {
	orders ports.PurchaseOrderRepository
}

func NewListPurchaseOrdersQueryHandler(orders ports.PurchaseOrderRepository) ListPurchaseOrdersQueryHandler {
	return ListPurchaseOrdersQueryHandler{orders: orders}
}

func (h ListPurchaseOrdersQueryHandler) Handle(ctx context.Context, query ListPurchaseOrdersQuery) ([]PurchaseOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.load(ctx, query)
	if err != nil {
		return nil, err
	}
	return newPurchaseOrderViews(orders), nil
}

func (h ListPurchaseOrdersQueryHandler) load(ctx context.Context, query ListPurchaseOrdersQuery) ([]*purchaseorder.PurchaseOrder, error) {
	actor := query.Actor()

	switch actor.Role() {
	case kernel.RoleVendor:
		if query.HasStatusFilter() {
			return h.orders.ListByVendorAndStatus(ctx, actor.ID(), query.Status())
		}
		return h.orders.ListByVendor(ctx, actor.ID())

	case kernel.RolePurchaser:
		orders, err := h.orders.ListByPurchaser(ctx, actor.ID())
		if err != nil || !query.HasStatusFilter() {
			return orders, err
		}
		return filterByStatus(orders, query.Status()), nil

	case kernel.RoleAdmin:
		if query.HasStatusFilter() {
			return h.orders.ListByStatus(ctx, query.Status())
		}
		return h.listAll(ctx)
	}

	return nil, actor.Validate()
}

// listAll merges the per-status lists back into issue-date order.
func (h ListPurchaseOrdersQueryHandler) listAll(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error) {
	var all []*purchaseorder.PurchaseOrder
	for _, status := range []purchaseorder.Status{purchaseorder.Pending, purchaseorder.Cancelled, purchaseorder.Delivered} {
		orders, err := h.orders.ListByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		all = append(all, orders...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].IssuedDate().Equal(all[j].IssuedDate()) {
			return all[i].IssuedDate().Before(all[j].IssuedDate())
		}
		return all[i].ID().String() < all[j].ID().String()
	})
	return all, nil
}

func filterByStatus(orders []*purchaseorder.PurchaseOrder, status purchaseorder.Status) []*purchaseorder.PurchaseOrder {
	filtered := make([]*purchaseorder.PurchaseOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status() == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
