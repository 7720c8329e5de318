// Optional Prometheus instrumentation for Forest.
//
// This mirrors the hook-injection shape the teacher package uses for
// traversal callbacks (bfs.Option's OnVisit/OnEnqueue): a small struct of
// counters/gauges the caller owns and registers, attached via
// WithMetrics. Forest updates it synchronously inline with Link/Cut — no
// goroutines, no locks, honoring the single-threaded non-goal — which is
// exactly what a network link-state tracker (spec.md section 1's stated
// consumer) needs to export forest-shape metrics to a scrape endpoint.
package eulerforest

import "github.com/prometheus/client_golang/prometheus"

// Metrics is a set of Prometheus collectors a Forest updates on every
// mutating call. The zero value is not usable; construct with
// NewMetrics, register the embedded collectors with a prometheus.Registerer,
// and attach via WithMetrics.
type Metrics struct {
	// Links counts successful Link calls.
	Links prometheus.Counter

	// Cuts counts successful Cut calls.
	Cuts prometheus.Counter

	// Components tracks the current ComponentCount().
	Components prometheus.Gauge
}

// NewMetrics builds a Metrics with the standard dynaforest collector
// names, under the given namespace (e.g. "myservice").
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Links: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dynaforest",
			Name:      "link_total",
			Help:      "Total number of successful Link calls.",
		}),
		Cuts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dynaforest",
			Name:      "cut_total",
			Help:      "Total number of successful Cut calls.",
		}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dynaforest",
			Name:      "components",
			Help:      "Current number of connected components in the forest.",
		}),
	}
}

// Register registers m's collectors with reg. Call once after NewMetrics
// and before attaching m via WithMetrics.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Links, m.Cuts, m.Components} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// observe records one Link or Cut call and refreshes the component gauge.
// No-op if m is nil, so callers that never attached metrics pay nothing.
func (m *Metrics) observe(linked bool, components int) {
	if m == nil {
		return
	}
	if linked {
		m.Links.Inc()
	} else {
		m.Cuts.Inc()
	}
	m.Components.Set(float64(components))
}
