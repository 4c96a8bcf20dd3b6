package httpapi

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/surfseek/activityrank/internal/activity"
	"github.com/surfseek/activityrank/internal/geocoding"
	"github.com/surfseek/activityrank/internal/weather"
)

var validate = validator.New()

// ForecastService supplies daily observations for validated coordinates.
type ForecastService interface {
	Forecast(ctx context.Context, coord weather.Coordinates, days int) (weather.Forecast, error)
}

// LocationSearcher resolves free-text queries to candidate locations.
type LocationSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]geocoding.Location, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// defaultDays is the forecast window used when the request omits `days`.
func RegisterRoutes(app *fiber.App, forecasts ForecastService, locations LocationSearcher, defaultDays int) {
	v1 := app.Group("/api/v1")

	v1.Get("/locations/search", func(c *fiber.Ctx) error {
		query := c.Query("query")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query parameter is required")
		}

		limit := c.QueryInt("limit", geocoding.MaxResults)

		results, err := locations.Search(c.UserContext(), query, limit)
		if err != nil {
			if errors.Is(err, geocoding.ErrNoResults) {
				return fiber.NewError(fiber.StatusNotFound, "no locations match the query")
			}
			return fiber.NewError(fiber.StatusBadGateway, "location search unavailable")
		}

		return c.JSON(fiber.Map{
			"query":   query,
			"results": results,
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		req, err := parseForecastQuery(c, defaultDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		observations, err := forecasts.Forecast(c.UserContext(), req.toCoordinates(), req.Days)
		if err != nil {
			return mapForecastError(err)
		}

		summary, err := weather.Summarize(observations)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(fiber.Map{
			"location":     req.toCoordinates(),
			"days":         req.Days,
			"observations": observations,
			"summary":      summary,
		})
	})

	v1.Get("/activities/ranking", func(c *fiber.Ctx) error {
		req, err := parseForecastQuery(c, defaultDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		observations, err := forecasts.Forecast(c.UserContext(), req.toCoordinates(), req.Days)
		if err != nil {
			return mapForecastError(err)
		}

		summary, err := weather.Summarize(observations)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		result := activity.Rank(summary)

		return c.JSON(fiber.Map{
			"location":    req.toCoordinates(),
			"days":        req.Days,
			"summary":     summary,
			"scores":      result.Scores,
			"recommended": result.Recommended,
		})
	})
}

func mapForecastError(err error) error {
	if errors.Is(err, weather.ErrFetchFailed) {
		return fiber.NewError(fiber.StatusBadGateway, "upstream forecast source unavailable")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast")
}

// forecastQuery holds validated coordinates and forecast window length.
type forecastQuery struct {
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
	Days int     `validate:"gte=1,lte=7"`
}

func (f forecastQuery) toCoordinates() weather.Coordinates {
	return weather.Coordinates{
		Latitude:  f.Lat,
		Longitude: f.Lon,
	}
}

func parseForecastQuery(c *fiber.Ctx, defaultDays int) (forecastQuery, error) {
	var q forecastQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}

	q.Lat = lat
	q.Lon = lon
	q.Days = c.QueryInt("days", defaultDays)

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
