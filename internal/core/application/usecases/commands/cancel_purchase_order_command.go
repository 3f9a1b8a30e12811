package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
)

var ErrCancelPurchaseOrderCommandIsNotConstructed = errors.New(
	"CancelPurchaseOrderCommand must be created via NewCancelPurchaseOrderCommand constructor",
)

// CancelPurchaseOrderCommand cancels an order. It is a status change, never a deletion.
type CancelPurchaseOrderCommand struct {
	orderCommand
}

func NewCancelPurchaseOrderCommand(actor kernel.Actor, orderID kernel.UUID) (CancelPurchaseOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return CancelPurchaseOrderCommand{}, err
	}
	return CancelPurchaseOrderCommand{orderCommand: base}, nil
}

func (c CancelPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelPurchaseOrderCommandIsNotConstructed)
}
