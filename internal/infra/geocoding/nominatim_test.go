package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"trustbites/config"
	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/service"
	mockSvc "trustbites/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) (service.Geocoder, *mockSvc.MockMetrics) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Geocoding.BaseURL = baseURL
	cfg.Geocoding.UserAgent = "TrustBitesTest/1.0"
	cfg.Geocoding.Timeout = timeout

	metrics := mockSvc.NewMockMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNominatimClient(cfg, logger, metrics), metrics
}

func TestForward_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Tasca Verde Lisbon", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "TrustBitesTest/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"38.7223","lon":"-9.1393","display_name":"Lisboa"}]`))
	}))
	defer srv.Close()

	geocoder, metrics := newTestClient(t, srv.URL, time.Second)
	metrics.EXPECT().GeocodeLookup(directionForward, outcomeOK).Once()

	coords, ok := geocoder.Forward(context.Background(), "Tasca Verde Lisbon")
	require.True(t, ok)
	assert.Equal(t, entity.Coordinates{Lat: 38.7223, Lon: -9.1393}, coords)
}

func TestForward_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		outcome string
	}{
		{
			name: "empty result set",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			outcome: outcomeMiss,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			outcome: outcomeError,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			outcome: outcomeError,
		},
		{
			name: "unparsable coordinates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"lat":"north","lon":"-9.1"}]`))
			},
			outcome: outcomeError,
		},
		{
			name: "slow upstream hits the timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			outcome: outcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			geocoder, metrics := newTestClient(t, srv.URL, 100*time.Millisecond)
			metrics.EXPECT().GeocodeLookup(directionForward, tt.outcome).Once()

			coords, ok := geocoder.Forward(context.Background(), "nonexistent-place-xyz123")
			assert.False(t, ok)
			assert.Equal(t, entity.Coordinates{}, coords)
		})
	}
}

func TestForward_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	geocoder, metrics := newTestClient(t, baseURL, time.Second)
	metrics.EXPECT().GeocodeLookup(directionForward, outcomeError).Once()

	_, ok := geocoder.Forward(context.Background(), "nonexistent-place-xyz123")
	assert.False(t, ok)
}

func TestForward_BlankQuerySkipsLookup(t *testing.T) {
	geocoder, _ := newTestClient(t, "http://127.0.0.1:1", time.Second)

	_, ok := geocoder.Forward(context.Background(), "   ")
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"city", `{"address":{"city":"Lisboa","town":"Belém"}}`, "Lisboa"},
		{"town fallback", `{"address":{"town":"Sintra"}}`, "Sintra"},
		{"village fallback", `{"address":{"village":"Azenhas do Mar"}}`, "Azenhas do Mar"},
		{"municipality fallback", `{"address":{"municipality":"Cascais"}}`, "Cascais"},
		{"nothing usable", `{"address":{"road":"Rua Augusta"}}`, service.UnknownCity},
		{"upstream error object", `{"error":"Unable to geocode"}`, service.UnknownCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse", r.URL.Path)
				assert.Equal(t, "38.7223", r.URL.Query().Get("lat"))
				assert.Equal(t, "-9.1393", r.URL.Query().Get("lon"))
				assert.Equal(t, "10", r.URL.Query().Get("zoom"))
				assert.NotEmpty(t, r.Header.Get("User-Agent"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			geocoder, metrics := newTestClient(t, srv.URL, time.Second)
			outcome := outcomeOK
			if tt.want == service.UnknownCity {
				outcome = outcomeMiss
			}
			metrics.EXPECT().GeocodeLookup(directionReverse, outcome).Once()

			assert.Equal(t, tt.want, geocoder.Reverse(context.Background(), 38.7223, -9.1393))
		})
	}
}

func TestReverse_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	geocoder, metrics := newTestClient(t, baseURL, time.Second)
	metrics.EXPECT().GeocodeLookup(directionReverse, outcomeError).Once()

	assert.Equal(t, service.UnknownCity, geocoder.Reverse(context.Background(), 1, 2))
}

func TestForward_SharedLookupSurvivesCallerCancellation(t *testing.T) {
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		_, _ = w.Write([]byte(`[{"lat":"38.7223","lon":"-9.1393"}]`))
	}))
	defer srv.Close()

	geocoder, metrics := newTestClient(t, srv.URL, 5*time.Second)
	metrics.EXPECT().GeocodeLookup(directionForward, outcomeOK).Times(2)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	results := make([]bool, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, results[0] = geocoder.Forward(ctx, "Tasca Verde Lisbon")
	}()
	<-arrived

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, results[1] = geocoder.Forward(context.Background(), "Tasca Verde Lisbon")
	}()

	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.True(t, results[0], "cancelled caller still receives the shared result")
	assert.True(t, results[1], "other caller is not affected by the cancellation")
}

func TestReverse_SurvivesCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"city":"Lisboa"}}`))
	}))
	defer srv.Close()

	geocoder, metrics := newTestClient(t, srv.URL, time.Second)
	metrics.EXPECT().GeocodeLookup(directionReverse, outcomeOK).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "Lisboa", geocoder.Reverse(ctx, 38.7223, -9.1393))
}
