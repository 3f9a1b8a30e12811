package queries

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/pkg/guard"
)

var ErrListPurchaseOrdersQueryIsNotConstructed = errors.New(
	"ListPurchaseOrdersQuery must be created via NewListPurchaseOrdersQuery constructor",
)

// ListPurchaseOrdersQuery lists the orders visible to actor. A status of
// purchaseorder.Unknown means no status filter.
//
// Example:
//
//	query, _ := NewListPurchaseOrdersQuery(actor, purchaseorder.Pending)
//	orders, err := handler.Handle(ctx, query)
type ListPurchaseOrdersQuery struct {
	actor  kernel.Actor
	status purchaseorder.Status

	guard guard.ConstructorGuard
}

func NewListPurchaseOrdersQuery(actor kernel.Actor, status purchaseorder.Status) (ListPurchaseOrdersQuery, error) {
	var statusErr error
	if status != purchaseorder.Unknown {
		statusErr = status.Validate()
	}
	if err := errors.Join(actor.Validate(), statusErr); err != nil {
		return ListPurchaseOrdersQuery{}, err
	}
	return ListPurchaseOrdersQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPurchaseOrdersQueryIsNotConstructed)
}

func (q ListPurchaseOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListPurchaseOrdersQuery) Status() purchaseorder.Status {
	return q.status
}

// HasStatusFilter reports whether only one status was requested.
func (q ListPurchaseOrdersQuery) HasStatusFilter() bool {
	return q.status != purchaseorder.Unknown
}
