package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
)

var ErrReplacePurchaseOrderItemsCommandIsNotConstructed = errors.New(
	"ReplacePurchaseOrderItemsCommand must be created via NewReplacePurchaseOrderItemsCommand constructor",
)

// ReplacePurchaseOrderItemsCommand is the purchaser's update of an order that the
// vendor has not acknowledged yet.
type ReplacePurchaseOrderItemsCommand struct {
	orderCommand
	items []purchaseorder.Item
}

func NewReplacePurchaseOrderItemsCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	items []purchaseorder.Item,
) (ReplacePurchaseOrderItemsCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return ReplacePurchaseOrderItemsCommand{}, err
	}
	return ReplacePurchaseOrderItemsCommand{
		orderCommand: base,
		items:        append([]purchaseorder.Item(nil), items...),
	}, nil
}

func (c ReplacePurchaseOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplacePurchaseOrderItemsCommandIsNotConstructed)
}

func (c ReplacePurchaseOrderItemsCommand) Items() []purchaseorder.Item {
	return append([]purchaseorder.Item(nil), c.items...)
}
