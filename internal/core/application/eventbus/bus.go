// Package eventbus is the in-process, synchronous publish/subscribe mechanism that
// carries purchase-order events from the command handlers to the performance
// recalculation. It is built in the composition root and handed to its users; there
// is no package level registry.
package eventbus

import (
	"context"
	"fmt"
	"sync"

	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"
	"vendorflow/internal/pkg/metrics"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

var (
	_ ports.EventPublisher  = (*Bus)(nil)
	_ ports.EventSubscriber = (*Bus)(nil)
)

// Bus delivers each event to the handlers subscribed to its kind, one after the
// other and in subscription order, before Publish returns. A failing handler does not
// stop the ones after it.
type Bus struct {
	mu       sync.RWMutex
	handlers map[purchaseorder.EventKind][]ports.EventHandler

	logger  zerolog.Logger
	metrics *metrics.EventBusMetrics
}

func New(logger zerolog.Logger, m *metrics.EventBusMetrics) *Bus {
	return &Bus{
		handlers: make(map[purchaseorder.EventKind][]ports.EventHandler),
		logger:   logger.With().Str("component", "eventbus").Logger(),
		metrics:  m,
	}
}

// Subscribe appends handler to the handlers of kind.
func (b *Bus) Subscribe(kind purchaseorder.EventKind, handler ports.EventHandler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish runs every handler of event.Kind and returns their failures combined with
// multierr, or nil. A panicking handler is reported as a failure.
func (b *Bus) Publish(ctx context.Context, event ports.Event) error {
	b.mu.RLock()
	handlers := make([]ports.EventHandler, len(b.handlers[event.Kind]))
	copy(handlers, b.handlers[event.Kind])
	b.mu.RUnlock()

	kind := event.Kind.String()
	b.metrics.IncPublished(kind)

	var result error
	for idx, handler := range handlers {
		if err := invoke(ctx, handler, event); err != nil {
			b.metrics.IncHandlerFailure(kind)
			b.logger.Error().
				Err(err).
				Str("event", kind).
				Int("handler", idx).
				Str("order_id", orderID(event)).
				Msg("event handler failed")
			result = multierr.Append(result, fmt.Errorf("%s handler %d: %w", kind, idx, err))
		}
	}
	return result
}

func invoke(ctx context.Context, handler ports.EventHandler, event ports.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler(ctx, event)
}

func orderID(event ports.Event) string {
	if event.Order == nil {
		return ""
	}
	return event.Order.ID().String()
}
