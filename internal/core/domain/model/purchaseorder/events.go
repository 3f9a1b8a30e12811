package purchaseorder

import (
	"time"

	"vendorflow/internal/core/domain/model/kernel"
)

// EventKind names a fact recorded by a successful transition.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventAcknowledged
	EventDelivered
	EventStatusChanged
	EventRatingProvided
)

func (k EventKind) String() string {
	switch k {
	case EventAcknowledged:
		return "acknowledged"
	case EventDelivered:
		return "delivered"
	case EventStatusChanged:
		return "status_changed"
	case EventRatingProvided:
		return "rating_provided"
	case EventUnknown:
		return "unknown"
	}
	return "unknown"
}

// DomainEvent is recorded by the aggregate and published by the application layer
// once the transition is committed. Events of one transition keep their order.
type DomainEvent struct {
	kind       EventKind
	orderID    kernel.UUID
	vendorID   kernel.UUID
	occurredAt time.Time
}

func (e DomainEvent) Kind() EventKind {
	return e.kind
}

func (e DomainEvent) OrderID() kernel.UUID {
	return e.orderID
}

func (e DomainEvent) VendorID() kernel.UUID {
	return e.vendorID
}

func (e DomainEvent) OccurredAt() time.Time {
	return e.occurredAt
}
