package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/surfseek/activityrank/internal/resilience"
	"github.com/surfseek/activityrank/internal/weather"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// dailyVariables are the Open-Meteo daily fields a DailyObservation needs.
var dailyVariables = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"wind_speed_10m_max",
}

// OpenMeteoProvider implements weather.ForecastProvider against the
// Open-Meteo daily forecast API. No API key required.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg resilience.HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates the provider. baseURL may be empty to use
// the public API; tests point it at a local server.
func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = defaultForecastURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: resilience.HTTPClientConfig{
			Client: client,
			Backoff: resilience.BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchForecast fetches the daily forecast for the given coordinates and
// window length. Returns one observation per day, ascending by date.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, coord weather.Coordinates, days int) (weather.Forecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
		values.Set("daily", strings.Join(dailyVariables, ","))
		values.Set("forecast_days", strconv.Itoa(days))
		values.Set("timezone", "UTC")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := resilience.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: openmeteo: %v", weather.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time             []string  `json:"time"`
			TemperatureMax   []float64 `json:"temperature_2m_max"`
			TemperatureMin   []float64 `json:"temperature_2m_min"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
			WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: openmeteo: decode: %v", weather.ErrFetchFailed, err)
	}

	d := payload.Daily
	if len(d.Time) == 0 {
		return nil, fmt.Errorf("%w: openmeteo: empty daily series", weather.ErrFetchFailed)
	}
	if len(d.TemperatureMax) != len(d.Time) ||
		len(d.TemperatureMin) != len(d.Time) ||
		len(d.PrecipitationSum) != len(d.Time) ||
		len(d.WindSpeedMax) != len(d.Time) {
		return nil, fmt.Errorf("%w: openmeteo: ragged daily series", weather.ErrFetchFailed)
	}

	forecast := make(weather.Forecast, 0, len(d.Time))
	for i, day := range d.Time {
		date, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: openmeteo: bad date %q: %v", weather.ErrFetchFailed, day, err)
		}

		forecast = append(forecast, weather.DailyObservation{
			Date:           date,
			TemperatureMax: d.TemperatureMax[i],
			TemperatureMin: d.TemperatureMin[i],
			Precipitation:  d.PrecipitationSum[i],
			WindSpeedMax:   d.WindSpeedMax[i],
		})
	}

	return forecast, nil
}
