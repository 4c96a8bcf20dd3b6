package weather

import (
	"context"
)

// ForecastProvider abstracts a daily-forecast source (e.g. Open-Meteo).
// Implementations return one observation per day, ordered by date
// ascending, or an error wrapping ErrFetchFailed.
type ForecastProvider interface {
	Name() string
	FetchForecast(ctx context.Context, coord Coordinates, days int) (Forecast, error)
}
