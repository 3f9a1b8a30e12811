// Package purchaseorder provides the PurchaseOrder aggregate root and the lifecycle
// rules of a purchase order exchanged between a purchaser and a vendor.
//
// The package includes:
//   - PurchaseOrder: the aggregate root that owns items, status and the write-once dates
//   - Status: the Pending -> Cancelled / Delivered state machine
//   - Item: a line of the order, with TotalQuantity deriving the order quantity
//   - RatingScale: the configured ceiling for quality ratings
//   - DomainEvent: the facts recorded by successful transitions
//
// Key business rules:
//   - Items are a non-empty list and every quantity is at least 1
//   - Once a vendor acknowledges an order its items are frozen and it can no longer be cancelled
//   - Delivery requires a prior acknowledgement; Cancelled and Delivered are final
//   - Only delivered orders can be rated, within [0, RatingScale]
//
// A failed transition returns a sentinel *errs.StateConflictError (or a validation
// error) and leaves the aggregate untouched.
package purchaseorder
