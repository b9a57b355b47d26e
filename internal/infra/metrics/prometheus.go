// Package metrics exposes service counters through prometheus.
package metrics

import (
	"net/http"

	"trustbites/internal/domain/service"
	"trustbites/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trustbites"

type prometheusMetrics struct {
	geocodeLookups *prometheus.CounterVec
	feedEvents     *prometheus.CounterVec
	sessionsOpened prometheus.Counter
	sessionsClosed *prometheus.CounterVec
	liveSessions   prometheus.Gauge
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewPrometheusMetrics registers the service collectors on the registry.
func NewPrometheusMetrics(registry *prometheus.Registry) (service.Metrics, error) {
	m := &prometheusMetrics{
		geocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocoding",
			Name:      "lookups_total",
			Help:      "Geocoding lookups by direction and outcome.",
		}, []string{"direction", "outcome"}),
		feedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "events_total",
			Help:      "Feed events appended, by kind.",
		}, []string{"kind"}),
		sessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "opened_total",
			Help:      "Sessions opened.",
		}),
		sessionsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "closed_total",
			Help:      "Sessions closed, by reason.",
		}, []string{"reason"}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "live",
			Help:      "Sessions currently held in memory.",
		}),
	}

	for _, c := range []prometheus.Collector{m.geocodeLookups, m.feedEvents, m.sessionsOpened, m.sessionsClosed, m.liveSessions} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return m, nil
}

// NewHandler serves the registry in the prometheus text format.
func NewHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func (m *prometheusMetrics) GeocodeLookup(direction, outcome string) {
	m.geocodeLookups.WithLabelValues(direction, outcome).Inc()
}

func (m *prometheusMetrics) FeedEvent(kind string) {
	m.feedEvents.WithLabelValues(kind).Inc()
}

func (m *prometheusMetrics) SessionOpened() {
	m.sessionsOpened.Inc()
}

func (m *prometheusMetrics) SessionsClosed(reason string, n int) {
	m.sessionsClosed.WithLabelValues(reason).Add(float64(n))
}

func (m *prometheusMetrics) SetLiveSessions(n int) {
	m.liveSessions.Set(float64(n))
}
