package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfseek/activityrank/internal/weather"
)

const dailyPayload = `{
	"latitude": 43.48,
	"longitude": -1.56,
	"daily": {
		"time": ["2025-06-01", "2025-06-02", "2025-06-03"],
		"temperature_2m_max": [26.5, 25.0, 24.5],
		"temperature_2m_min": [14.0, 15.5, 13.5],
		"precipitation_sum": [0.0, 1.2, 0.3],
		"wind_speed_10m_max": [22.5, 25.0, 28.5]
	}
}`

func TestOpenMeteoProvider_FetchForecast(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":      r.URL.Query().Get("latitude"),
			"longitude":     r.URL.Query().Get("longitude"),
			"daily":         r.URL.Query().Get("daily"),
			"forecast_days": r.URL.Query().Get("forecast_days"),
			"timezone":      r.URL.Query().Get("timezone"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(dailyPayload))
	}))
	defer server.Close()

	p := NewOpenMeteoProvider(server.Client(), server.URL)

	forecast, err := p.FetchForecast(context.Background(), weather.Coordinates{Latitude: 43.48, Longitude: -1.56}, 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)

	assert.Equal(t, "43.48", gotQuery["latitude"])
	assert.Equal(t, "-1.56", gotQuery["longitude"])
	assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max", gotQuery["daily"])
	assert.Equal(t, "3", gotQuery["forecast_days"])
	assert.Equal(t, "UTC", gotQuery["timezone"])

	first := forecast[0]
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 26.5, first.TemperatureMax)
	assert.Equal(t, 14.0, first.TemperatureMin)
	assert.Equal(t, 0.0, first.Precipitation)
	assert.Equal(t, 22.5, first.WindSpeedMax)

	last := forecast[2]
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), last.Date)
	assert.Equal(t, 28.5, last.WindSpeedMax)
}

func TestOpenMeteoProvider_EmptySeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily": {"time": []}}`))
	}))
	defer server.Close()

	p := NewOpenMeteoProvider(server.Client(), server.URL)

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{}, 7)
	require.ErrorIs(t, err, weather.ErrFetchFailed)
}

func TestOpenMeteoProvider_RaggedSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2025-06-01", "2025-06-02"],
				"temperature_2m_max": [26.5],
				"temperature_2m_min": [14.0, 15.5],
				"precipitation_sum": [0.0, 1.2],
				"wind_speed_10m_max": [22.5, 25.0]
			}
		}`))
	}))
	defer server.Close()

	p := NewOpenMeteoProvider(server.Client(), server.URL)

	_, err := p.FetchForecast(context.Background(), weather.Coordinates{}, 2)
	require.ErrorIs(t, err, weather.ErrFetchFailed)
}
