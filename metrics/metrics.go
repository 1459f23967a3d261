// Package metrics exposes prometheus collectors for route searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mihuman/flight-route-finder/routing"
)

// Search outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
)

type Search struct {
	searches   *prometheus.CounterVec
	duration   prometheus.Histogram
	graphEdges *prometheus.GaugeVec
}

// NewSearch registers the search collectors with reg.
func NewSearch(reg prometheus.Registerer) *Search {
	factory := promauto.With(reg)
	return &Search{
		// Labels: "found", "not_found", "timeout", "error"
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flight_route_searches_total",
			Help: "Total route searches by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "flight_route_search_duration_seconds",
			Help:    "Route search duration",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		}),
		graphEdges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "flight_route_graph_edges",
			Help: "Loaded route edges by mode",
		}, []string{"mode"}),
	}
}

// ObserveSearch records one search. A nil *Search records nothing.
func (m *Search) ObserveSearch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// SetGraphEdges publishes the edge count of every mode.
func (m *Search) SetGraphEdges(counts map[routing.Mode]int) {
	if m == nil {
		return
	}
	for _, mode := range []routing.Mode{routing.Flight, routing.Ground, routing.Either} {
		m.graphEdges.WithLabelValues(mode.String()).Set(float64(counts[mode]))
	}
}
