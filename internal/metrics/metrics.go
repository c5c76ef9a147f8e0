// Package metrics exposes Prometheus collectors for scroll tracking.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Zachkp/scroll-portfolio/internal/tracker"
)

// Metrics groups the collectors the server reports.
type Metrics struct {
	samples        prometheus.Counter
	invalidSamples prometheus.Counter
	sectionChanges *prometheus.CounterVec
	activeVisitors prometheus.Gauge
	wsConnections  prometheus.Gauge
}

// MustNew registers the collectors on reg and panics on duplicate
// registration, like the promauto helpers.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "scroll",
			Name:      "samples_total",
			Help:      "Viewport samples processed.",
		}),
		invalidSamples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "scroll",
			Name:      "invalid_samples_total",
			Help:      "Viewport samples rejected by validation.",
		}),
		sectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "scroll",
			Name:      "section_changes_total",
			Help:      "Active section transitions, by the section entered.",
		}, []string{"section"}),
		activeVisitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "scroll",
			Name:      "tracked_visitors",
			Help:      "Visitors with a live tracker in the session cache.",
		}),
		wsConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "scroll",
			Name:      "websocket_connections",
			Help:      "Open viewport WebSocket streams.",
		}),
	}
	reg.MustRegister(m.samples, m.invalidSamples, m.sectionChanges, m.activeVisitors, m.wsConnections)
	return m
}

// Sample counts one processed sample.
func (m *Metrics) Sample() { m.samples.Inc() }

// Invalid counts one rejected sample.
func (m *Metrics) Invalid() { m.invalidSamples.Inc() }

// Observe is a tracker.Observer counting section changes.
func (m *Metrics) Observe(u tracker.Update) {
	m.sectionChanges.WithLabelValues(string(u.Section)).Inc()
}

// SetVisitors records the tracker cache size.
func (m *Metrics) SetVisitors(n int) { m.activeVisitors.Set(float64(n)) }

// StreamOpened and StreamClosed track WebSocket connections.
func (m *Metrics) StreamOpened() { m.wsConnections.Inc() }

func (m *Metrics) StreamClosed() { m.wsConnections.Dec() }
