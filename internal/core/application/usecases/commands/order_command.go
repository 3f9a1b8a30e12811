package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/pkg/guard"
)

// orderCommand is embedded by every command that targets an existing order.
type orderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderCommand(actor kernel.Actor, orderID kernel.UUID) (orderCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return orderCommand{}, err
	}
	return orderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c orderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c orderCommand) OrderID() kernel.UUID {
	return c.orderID
}
