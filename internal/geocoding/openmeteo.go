// Package geocoding resolves free-text place queries to coordinates via
// the Open-Meteo geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/surfseek/activityrank/internal/resilience"
)

const defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// MaxResults caps how many candidates a search returns.
const MaxResults = 10

// ErrNoResults is returned when a search query matches no locations.
var ErrNoResults = errors.New("no locations found")

// Location is one geocoding candidate, ranked by the upstream API.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client talks to the Open-Meteo geocoding API.
type Client struct {
	baseURL string
	httpCfg resilience.HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a geocoding client. baseURL may be empty to use the
// public API; tests point it at a local server.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-geocoding",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: baseURL,
		httpCfg: resilience.HTTPClientConfig{
			Client: httpClient,
			Backoff: resilience.BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

// Search resolves a free-text query to a ranked list of candidate
// locations. limit is clamped to [1, MaxResults]. An empty result set is
// ErrNoResults so callers can map it to a 404.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", strconv.Itoa(limit))
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := resilience.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("geocoding search failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Admin1    string  `json:"admin1"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoding search failed: decode: %w", err)
	}

	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, query)
	}

	locations := make([]Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locations = append(locations, Location{
			Name:      r.Name,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}

	return locations, nil
}
