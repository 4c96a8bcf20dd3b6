package weather

import (
	"context"
	"fmt"
	"log"
)

// Service fronts the forecast provider for the API layer.
type Service struct {
	provider ForecastProvider
}

// NewService creates a new Service.
func NewService(provider ForecastProvider) *Service {
	return &Service{provider: provider}
}

// Forecast fetches the multi-day forecast for the given coordinates.
// Provider failures come back wrapping ErrFetchFailed and are passed
// through untouched; retries live inside the provider, not here.
func (s *Service) Forecast(ctx context.Context, coord Coordinates, days int) (Forecast, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be greater than zero")
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no forecast provider configured", ErrFetchFailed)
	}

	forecast, err := s.provider.FetchForecast(ctx, coord, days)
	if err != nil {
		log.Printf("provider %s forecast failed for (%f, %f): %v",
			s.provider.Name(), coord.Latitude, coord.Longitude, err)
		return nil, err
	}

	if len(forecast) == 0 {
		return nil, fmt.Errorf("%w: provider %s returned no days", ErrFetchFailed, s.provider.Name())
	}

	return forecast, nil
}
