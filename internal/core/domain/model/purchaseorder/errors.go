package purchaseorder

import (
	"errors"

	"vendorflow/internal/pkg/errs"
)

const objectName = "purchase order"

// State conflicts. Each one matches both itself and errs.ErrStateConflict with errors.Is.
var (
	ErrAlreadyAcknowledged = errs.NewStateConflictError(objectName, "is already acknowledged")
	ErrNotPending          = errs.NewStateConflictError(objectName, "is not pending")
	ErrNotAcknowledged     = errs.NewStateConflictError(objectName, "is not acknowledged")
	ErrAlreadyFinal        = errs.NewStateConflictError(objectName, "is already cancelled or delivered")
	ErrNotDelivered        = errs.NewStateConflictError(objectName, "is not delivered")
	ErrOrderLocked         = errs.NewStateConflictError(objectName, "is locked after acknowledgement")
)

var (
	// ErrInvalidItems is wrapped by every item-list validation failure.
	ErrInvalidItems = errs.NewValueIsInvalidError("items")

	ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder")
)
