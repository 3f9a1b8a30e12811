package commands

import (
	"errors"
	"time"

	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/pkg/errs"
)

var ErrAcknowledgePurchaseOrderCommandIsNotConstructed = errors.New(
	"AcknowledgePurchaseOrderCommand must be created via NewAcknowledgePurchaseOrderCommand constructor",
)

// AcknowledgePurchaseOrderCommand is the vendor's commitment to a delivery date.
type AcknowledgePurchaseOrderCommand struct {
	orderCommand
	expectedDeliveryDate time.Time
}

func NewAcknowledgePurchaseOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	expectedDeliveryDate time.Time,
) (AcknowledgePurchaseOrderCommand, error) {
	var dateErr error
	if expectedDeliveryDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	base, err := newOrderCommand(actor, orderID)
	if err = errors.Join(err, dateErr); err != nil {
		return AcknowledgePurchaseOrderCommand{}, err
	}
	return AcknowledgePurchaseOrderCommand{
		orderCommand:         base,
		expectedDeliveryDate: expectedDeliveryDate,
	}, nil
}

func (c AcknowledgePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgePurchaseOrderCommandIsNotConstructed)
}

func (c AcknowledgePurchaseOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}
