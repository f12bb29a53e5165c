// Package geocode resolves free-text addresses into coordinates using the
// Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/travel-journal/journal-api/internal/core/domain"
	"github.com/travel-journal/journal-api/internal/pkg/metrics"
)

const (
	provider       = "geocoder"
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout = 10 * time.Second

	msgNoResults = "Could not find location for the specified address."
	msgFailed    = "Geocoding service unavailable, please try again later."
)

// Config configures the Google client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GoogleClient implements ports.Geocoder against the Google Geocoding API.
type GoogleClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewGoogleClient(cfg Config) *GoogleClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &GoogleClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type googleResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve returns the coordinates of the first match. ZERO_RESULTS maps to a
// 422 UpstreamError; every other provider or transport failure maps to 502.
func (c *GoogleClient) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, domain.ValidationError("locationName is required")
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, upstream(http.StatusBadGateway, msgFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, upstream(http.StatusBadGateway, msgFailed, fmt.Errorf("provider returned HTTP %d", resp.StatusCode))
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, upstream(http.StatusBadGateway, msgFailed, fmt.Errorf("decode response: %w", err))
	}

	switch {
	case body.Status == "ZERO_RESULTS" || (body.Status == "OK" && len(body.Results) == 0):
		metrics.GeocodeRequestsTotal.WithLabelValues("zero_results").Inc()
		return domain.Coordinates{}, upstream(http.StatusUnprocessableEntity, msgNoResults, nil)
	case body.Status != "OK":
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return domain.Coordinates{}, upstream(http.StatusBadGateway, msgFailed, fmt.Errorf("status %s: %s", body.Status, body.ErrorMessage))
	}

	metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	loc := body.Results[0].Geometry.Location
	return domain.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

func upstream(status int, msg string, err error) *domain.UpstreamError {
	return &domain.UpstreamError{Provider: provider, Status: status, Message: msg, Err: err}
}
