package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand asks to issue a new purchase order to a vendor.
// The items are validated by the aggregate, so an empty list is accepted here and
// rejected by the handler with purchaseorder.ErrInvalidItems.
//
// Example:
//
//	bolts, _ := purchaseorder.NewItem("bolts", 40)
//	cmd, err := NewCreatePurchaseOrderCommand(actor, vendorID, []purchaseorder.Item{bolts})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	vendorID kernel.UUID
	items    []purchaseorder.Item

	guard guard.ConstructorGuard
}

func NewCreatePurchaseOrderCommand(
	actor kernel.Actor,
	vendorID kernel.UUID,
	items []purchaseorder.Item,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		items: append([]purchaseorder.Item(nil), items...),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setVendorID(vendorID),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreatePurchaseOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c CreatePurchaseOrderCommand) Items() []purchaseorder.Item {
	return append([]purchaseorder.Item(nil), c.items...)
}

func (c *CreatePurchaseOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreatePurchaseOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}
