package purchaseorder

import (
	"fmt"

	"vendorflow/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
//
// State transitions:
//
//	Pending ──┬──> Delivered   (requires acknowledgement)
//	          └──> Cancelled   (requires no acknowledgement)
//
// Delivered and Cancelled are final. Acknowledgement and rating are tracked by the
// write-once dates of PurchaseOrder, not by Status.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota

	// Pending is the status of every new order.
	Pending

	// Cancelled is final.
	Cancelled

	// Delivered is final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cancelled: "Cancelled",
		Delivered: "Delivered",
	}
}

// getStatusCodes returns the one-letter codes persisted by the order store.
func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown is never persisted
	return map[Status]string{
		Pending:   "P",
		Cancelled: "C",
		Delivered: "D",
	}
}

// StatusFromCode parses a persisted one-letter status code ("P", "C" or "D").
func StatusFromCode(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status code", code))
}

// StatusFromString parses the display name, as used by list filters.
func StatusFromString(name string) (Status, error) {
	for s, n := range getStatusStrings() {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate returns an error for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the persisted one-letter code, or "" for invalid values.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// IsFinal reports whether no further status change is possible.
func (s Status) IsFinal() bool {
	return s == Cancelled || s == Delivered
}

// Cancel transitions Pending to Cancelled.
//
// Returns:
//   - (Cancelled, nil) from Pending
//   - (Unknown, ErrAlreadyFinal) from Cancelled or Delivered
//   - (Unknown, validation error) from an invalid status
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() {
		return Unknown, ErrAlreadyFinal
	}
	return Cancelled, nil
}

// Deliver transitions Pending to Delivered. The acknowledgement guard lives on
// the aggregate; this method only enforces that final statuses stay final.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() {
		return Unknown, ErrAlreadyFinal
	}
	return Delivered, nil
}
