package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/streetpath/dijkstra"
	"github.com/katalvlaran/streetpath/session"
)

// Route query outcomes, used as the "outcome" label.
const (
	outcomeFound       = "found"
	outcomeIdentity    = "identity"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

// Graph load results, used as the "result" label.
const (
	loadOK      = "ok"
	loadInvalid = "invalid"
	loadError   = "error"
)

// Metrics holds the collectors of one Server on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	graphLoads    *prometheus.CounterVec
	graphNodes    prometheus.Gauge
	graphEdges    prometheus.Gauge
	routeQueries  *prometheus.CounterVec
	routeDuration prometheus.Histogram
}

// NewMetrics registers the streetpath collectors, plus the Go runtime and
// process collectors, on a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		graphLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "streetpath_graph_loads_total",
			Help: "Total graph loads by result",
		}, []string{"result"}),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streetpath_graph_nodes",
			Help: "Nodes in the current graph",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "streetpath_graph_edges",
			Help: "Edges in the current graph",
		}),
		routeQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "streetpath_route_queries_total",
			Help: "Total route queries by outcome",
		}, []string{"outcome"}),
		routeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "streetpath_route_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observeLoad(result string, st session.Stats) {
	m.graphLoads.WithLabelValues(result).Inc()
	if result == loadOK {
		m.graphNodes.Set(float64(st.Nodes))
		m.graphEdges.Set(float64(st.Edges))
	}
}

func (m *Metrics) observeRoute(res *dijkstra.Result, err error, elapsed time.Duration) {
	m.routeDuration.Observe(elapsed.Seconds())
	switch {
	case err != nil:
		m.routeQueries.WithLabelValues(outcomeError).Inc()
	case res.Identity():
		m.routeQueries.WithLabelValues(outcomeIdentity).Inc()
	case res.Reachable():
		m.routeQueries.WithLabelValues(outcomeFound).Inc()
	default:
		m.routeQueries.WithLabelValues(outcomeUnreachable).Inc()
	}
}
