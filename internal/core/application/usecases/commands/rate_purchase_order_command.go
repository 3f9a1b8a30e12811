package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
)

var ErrRatePurchaseOrderCommandIsNotConstructed = errors.New(
	"RatePurchaseOrderCommand must be created via NewRatePurchaseOrderCommand constructor",
)

// RatePurchaseOrderCommand carries the purchaser's quality rating. The range is
// checked by the handler against the configured rating scale.
type RatePurchaseOrderCommand struct {
	orderCommand
	rating float64
}

func NewRatePurchaseOrderCommand(actor kernel.Actor, orderID kernel.UUID, rating float64) (RatePurchaseOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return RatePurchaseOrderCommand{}, err
	}
	return RatePurchaseOrderCommand{orderCommand: base, rating: rating}, nil
}

func (c RatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrRatePurchaseOrderCommandIsNotConstructed)
}

func (c RatePurchaseOrderCommand) Rating() float64 {
	return c.rating
}
