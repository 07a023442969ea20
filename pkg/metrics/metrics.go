package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry contiene los collectors propios de la aplicación.
	Registry = prometheus.NewRegistry()

	// HTTPRequests total de peticiones HTTP atendidas.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finanzas",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration duración de las peticiones HTTP.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finanzas",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "route"},
	)

	// NotificationFailures notificaciones best-effort que fallaron (por canal).
	NotificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finanzas",
			Subsystem: "notifications",
			Name:      "failures_total",
			Help:      "Total number of best-effort notifications that could not be delivered.",
		},
		[]string{"channel"},
	)

	// CacheInvalidations invalidaciones de particiones de caché.
	CacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finanzas",
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Total number of cache partition invalidations.",
		},
		[]string{"partition"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequests,
		HTTPDuration,
		NotificationFailures,
		CacheInvalidations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expone las métricas registradas en formato Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
