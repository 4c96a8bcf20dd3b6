package weather

// Summarize reduces a forecast window to a single averaged summary.
// Each field of the result is the arithmetic mean of that field across
// all observations; no rounding is applied, so downstream threshold
// comparisons see full precision. A single-element window summarizes to
// that element.
func Summarize(observations []DailyObservation) (WeatherSummary, error) {
	if len(observations) == 0 {
		return WeatherSummary{}, ErrNoObservations
	}

	var (
		sumTempMax float64
		sumTempMin float64
		sumPrecip  float64
		sumWind    float64
	)

	for _, obs := range observations {
		sumTempMax += obs.TemperatureMax
		sumTempMin += obs.TemperatureMin
		sumPrecip += obs.Precipitation
		sumWind += obs.WindSpeedMax
	}

	n := float64(len(observations))

	return WeatherSummary{
		TemperatureMax: sumTempMax / n,
		TemperatureMin: sumTempMin / n,
		Precipitation:  sumPrecip / n,
		WindSpeedMax:   sumWind / n,
	}, nil
}
