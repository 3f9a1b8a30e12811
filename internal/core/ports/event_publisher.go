package ports

import (
	"context"

	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/domain/model/vendor"
)

// Event is what the lifecycle publishes after a committed transition: the kind, the
// updated order and its resolved vendor.
type Event struct {
	Kind   purchaseorder.EventKind
	Order  *purchaseorder.PurchaseOrder
	Vendor *vendor.Vendor
}

// EventHandler reacts to one published event. A returned error is reported back to
// the publisher but never undoes the transition.
type EventHandler func(ctx context.Context, event Event) error

// EventPublisher delivers an event synchronously to every handler subscribed to its kind.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// EventSubscriber registers handlers. Handlers of the same kind run in subscription order.
type EventSubscriber interface {
	Subscribe(kind purchaseorder.EventKind, handler EventHandler)
}
