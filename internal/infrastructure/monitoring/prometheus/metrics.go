// Package prometheus holds the application metrics exposed on /metrics by
// the serve command.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultHTTPDurationBuckets covers sub-millisecond graph queries up to
// slow cold-start responses.
var DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Metrics holds all application metrics.
type Metrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Record set
	TreeIndividuals prometheus.Gauge
	TreeFamilies    prometheus.Gauge
	TreeEvents      prometheus.Gauge
	TreeReloads     *prometheus.CounterVec

	// Kinship graph
	GraphNodes       prometheus.Gauge
	GraphEdges       prometheus.Gauge
	PathQueriesTotal *prometheus.CounterVec
}

// New registers all metrics on reg and returns them.  Pass a fresh registry
// in tests to avoid duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familytree_http_requests_total",
			Help: "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "familytree_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: DefaultHTTPDurationBuckets,
		}, []string{"method", "route"}),

		TreeIndividuals: factory.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_individuals",
			Help: "Individuals in the loaded record set.",
		}),
		TreeFamilies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_families",
			Help: "Families in the loaded record set.",
		}),
		TreeEvents: factory.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_events",
			Help: "Recurring calendar events extracted from the record set.",
		}),
		TreeReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familytree_tree_reloads_total",
			Help: "Record set reloads, by result.",
		}, []string{"result"}),

		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_graph_nodes",
			Help: "Nodes in the kinship graph.",
		}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_graph_edges",
			Help: "Edges in the kinship graph.",
		}),
		PathQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "familytree_path_queries_total",
			Help: "Shortest-path queries, by outcome.",
		}, []string{"outcome"}),
	}
}

// NewDefault registers on the global default registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
