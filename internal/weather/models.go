package weather

import (
	"time"
)

// Coordinates identifies a point on the globe. The API layer validates
// ranges before these reach the core; the core trusts them.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DailyObservation is one day of forecast data for a location, normalized
// from the upstream provider. Temperatures are Celsius, precipitation is
// millimeters, wind speed is km/h.
type DailyObservation struct {
	Date           time.Time `json:"date"`
	TemperatureMax float64   `json:"temperatureMaxC"`
	TemperatureMin float64   `json:"temperatureMinC"`
	Precipitation  float64   `json:"precipitationMm"`
	WindSpeedMax   float64   `json:"windSpeedMaxKmh"`
}

// WeatherSummary is the period-averaged view of a forecast window: each
// field is the arithmetic mean of that field across the observations.
type WeatherSummary struct {
	TemperatureMax float64 `json:"temperatureMaxC"`
	TemperatureMin float64 `json:"temperatureMinC"`
	Precipitation  float64 `json:"precipitationMm"`
	WindSpeedMax   float64 `json:"windSpeedMaxKmh"`
}

// Forecast is an ordered multi-day sequence of daily observations,
// ascending by date.
type Forecast []DailyObservation
