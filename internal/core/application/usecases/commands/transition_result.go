package commands

import (
	"errors"

	"vendorflow/internal/core/domain/model/purchaseorder"
)

// ErrMetricsWriteFailure is wrapped by TransitionResult.Warning when the transition
// was committed but a performance handler failed afterwards.
var ErrMetricsWriteFailure = errors.New("vendor performance metrics could not be updated")

// TransitionResult is the outcome of a successful lifecycle command. Warning is nil
// unless publishing the recorded events failed; the order change itself is committed
// either way.
type TransitionResult struct {
	Order   *purchaseorder.PurchaseOrder
	Warning error
}

// HasWarning reports whether the caller should surface a metrics warning.
func (r TransitionResult) HasWarning() bool {
	return r.Warning != nil
}
