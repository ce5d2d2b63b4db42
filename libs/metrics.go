package libs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the storefront's collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wemovies",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wemovies",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	catalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wemovies",
			Subsystem: "catalog",
			Name:      "fetches_total",
			Help:      "Catalog fetches by outcome.",
		},
		[]string{"outcome"},
	)

	cartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wemovies",
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart store mutations by operation.",
		},
		[]string{"op"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wemovies",
			Subsystem: "session",
			Name:      "active",
			Help:      "Number of live in-memory sessions.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		catalogFetches,
		cartMutations,
		activeSessions,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func ObserveCatalogFetch(outcome string) {
	catalogFetches.WithLabelValues(outcome).Inc()
}

func ObserveCartMutation(op string) {
	cartMutations.WithLabelValues(op).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
