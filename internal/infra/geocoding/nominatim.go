// Package geocoding resolves addresses through a Nominatim-compatible HTTP API.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trustbites/config"
	deliverycontext "trustbites/internal/delivery/context"
	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"

	"github.com/paulmach/orb"
	"golang.org/x/sync/singleflight"
)

const (
	directionForward = "forward"
	directionReverse = "reverse"

	outcomeOK    = "ok"
	outcomeMiss  = "miss"
	outcomeError = "error"

	// maxResponseSize bounds how much of a response body is decoded.
	maxResponseSize = 1 << 20
)

var errNoResult = errors.New("no geocoding result")

// nominatimClient implements service.Geocoder.
// Identical lookups running at the same time share one upstream request.
type nominatimClient struct {
	baseURL     string
	userAgent   string
	timeout     time.Duration
	reverseZoom int
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     service.Metrics
	group       singleflight.Group
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Error   string `json:"error"`
	Address struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

// NewNominatimClient creates a geocoder from the geocoding section of the config.
func NewNominatimClient(cfg *config.Config, logger *slog.Logger, metrics service.Metrics) service.Geocoder {
	return &nominatimClient{
		baseURL:     strings.TrimRight(cfg.Geocoding.BaseURL, "/"),
		userAgent:   cfg.Geocoding.UserAgent,
		timeout:     cfg.Geocoding.Timeout,
		reverseZoom: cfg.Geocoding.ReverseZoom,
		httpClient:  &http.Client{},
		logger:      logger,
		metrics:     metrics,
	}
}

// Forward looks up the first match for query.
func (c *nominatimClient) Forward(ctx context.Context, query string) (entity.Coordinates, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.Coordinates{}, false
	}

	// the lookup is shared with other callers, so one caller going away must not cancel it
	v, err, _ := c.group.Do(directionForward+":"+query, func() (any, error) {
		return c.search(context.WithoutCancel(ctx), query)
	})
	if err != nil {
		c.record(ctx, directionForward, err, slog.String("query", query))

		return entity.Coordinates{}, false
	}
	c.metrics.GeocodeLookup(directionForward, outcomeOK)

	return v.(entity.Coordinates), true
}

// Reverse names the settlement at the position.
func (c *nominatimClient) Reverse(ctx context.Context, lat, lon float64) string {
	key := directionReverse + ":" + strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.reverse(context.WithoutCancel(ctx), lat, lon)
	})
	if err != nil {
		c.record(ctx, directionReverse, err, slog.Float64("lat", lat), slog.Float64("lon", lon))

		return service.UnknownCity
	}
	c.metrics.GeocodeLookup(directionReverse, outcomeOK)

	return v.(string)
}

func (c *nominatimClient) search(ctx context.Context, query string) (entity.Coordinates, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []searchResult
	if err := c.getJSON(ctx, "/search", params, &results); err != nil {
		return entity.Coordinates{}, err
	}
	if len(results) == 0 {
		return entity.Coordinates{}, errNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "invalid latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "invalid longitude")
	}

	point := orb.Point{lon, lat}
	if !validPoint(point) {
		return entity.Coordinates{}, errors.Errorf("coordinates out of range: %v", point)
	}

	return entity.CoordinatesFromPoint(point), nil
}

func (c *nominatimClient) reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("zoom", strconv.Itoa(c.reverseZoom))

	var result reverseResult
	if err := c.getJSON(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}

	address := result.Address
	for _, name := range []string{address.City, address.Town, address.Village, address.Municipality} {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}

	return "", errNoResult
}

// getJSON issues a bounded GET and decodes the body into out.
func (c *nominatimClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	// Add X-Request-Id header for tracing
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("geocoding service returned non-success status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode geocoding response")
	}

	return nil
}

// record logs a failed lookup and counts it. Empty results are a miss, everything else an error.
func (c *nominatimClient) record(ctx context.Context, direction string, err error, attrs ...any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	if errors.Is(err, errNoResult) {
		c.metrics.GeocodeLookup(direction, outcomeMiss)
		logger.Debug("Geocoding lookup found nothing", append(attrs, slog.String("direction", direction))...)

		return
	}

	c.metrics.GeocodeLookup(direction, outcomeError)
	logger.Warn("Geocoding lookup failed",
		append(attrs, slog.String("direction", direction), slog.Any("error", err))...)
}

func validPoint(p orb.Point) bool {
	return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
}
