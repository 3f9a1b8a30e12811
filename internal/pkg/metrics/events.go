package metrics

import "github.com/prometheus/client_golang/prometheus"

// EventBusMetrics counts published events and failing handlers per event kind.
type EventBusMetrics struct {
	published *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

func NewEventBusMetrics(reg prometheus.Registerer) *EventBusMetrics {
	if reg == nil {
		return &EventBusMetrics{}
	}
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Events published on the in-process bus.",
	}, []string{"kind"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_handler_failures_total",
		Help:      "Event handler invocations that returned an error.",
	}, []string{"kind"})
	reg.MustRegister(published, failures)
	return &EventBusMetrics{published: published, failures: failures}
}

func (m *EventBusMetrics) IncPublished(kind string) {
	if m == nil || m.published == nil {
		return
	}
	m.published.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *EventBusMetrics) IncHandlerFailure(kind string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(kind)).Inc()
}
