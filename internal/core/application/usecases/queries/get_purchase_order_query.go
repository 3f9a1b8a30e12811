package queries

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/pkg/guard"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery retrieves one order on behalf of actor.
type GetPurchaseOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPurchaseOrderQuery(actor kernel.Actor, orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetPurchaseOrderQuery{}, err
	}
	return GetPurchaseOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

func (q GetPurchaseOrderQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
