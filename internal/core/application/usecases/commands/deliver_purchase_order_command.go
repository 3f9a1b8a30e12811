package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
)

var ErrDeliverPurchaseOrderCommandIsNotConstructed = errors.New(
	"DeliverPurchaseOrderCommand must be created via NewDeliverPurchaseOrderCommand constructor",
)

// DeliverPurchaseOrderCommand marks an acknowledged order as delivered now.
type DeliverPurchaseOrderCommand struct {
	orderCommand
}

func NewDeliverPurchaseOrderCommand(actor kernel.Actor, orderID kernel.UUID) (DeliverPurchaseOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return DeliverPurchaseOrderCommand{}, err
	}
	return DeliverPurchaseOrderCommand{orderCommand: base}, nil
}

func (c DeliverPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverPurchaseOrderCommandIsNotConstructed)
}
