package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatheredValue returns the value of the first sample of a family whose labels include want.
func gatheredValue(t *testing.T, registry *prometheus.Registry, name string, want map[string]string) float64 {
	families, err := registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			matched := true
			for k, v := range want {
				if labels[k] != v {
					matched = false
				}
			}
			if !matched {
				continue
			}
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}

			return metric.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s %v not found", name, want)

	return 0
}

func TestPrometheusMetrics_Record(t *testing.T) {
	registry := NewRegistry()
	m, err := NewPrometheusMetrics(registry)
	require.NoError(t, err)

	m.GeocodeLookup("forward", "ok")
	m.GeocodeLookup("forward", "ok")
	m.GeocodeLookup("reverse", "error")
	m.FeedEvent("join")
	m.SessionOpened()
	m.SessionsClosed("expired", 3)
	m.SetLiveSessions(7)

	assert.Equal(t, 2.0, gatheredValue(t, registry, "trustbites_geocoding_lookups_total", map[string]string{"direction": "forward", "outcome": "ok"}))
	assert.Equal(t, 1.0, gatheredValue(t, registry, "trustbites_geocoding_lookups_total", map[string]string{"direction": "reverse", "outcome": "error"}))
	assert.Equal(t, 1.0, gatheredValue(t, registry, "trustbites_feed_events_total", map[string]string{"kind": "join"}))
	assert.Equal(t, 1.0, gatheredValue(t, registry, "trustbites_sessions_opened_total", nil))
	assert.Equal(t, 3.0, gatheredValue(t, registry, "trustbites_sessions_closed_total", map[string]string{"reason": "expired"}))
	assert.Equal(t, 7.0, gatheredValue(t, registry, "trustbites_sessions_live", nil))
}

func TestPrometheusMetrics_DoubleRegistrationFails(t *testing.T) {
	registry := NewRegistry()
	_, err := NewPrometheusMetrics(registry)
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(registry)
	assert.Error(t, err)
}

func TestHandler_ServesTextFormat(t *testing.T) {
	registry := NewRegistry()
	m, err := NewPrometheusMetrics(registry)
	require.NoError(t, err)
	m.SessionOpened()

	rec := httptest.NewRecorder()
	NewHandler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "trustbites_sessions_opened_total 1")
}
