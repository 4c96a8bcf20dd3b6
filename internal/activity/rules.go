package activity

import (
	"github.com/surfseek/activityrank/internal/weather"
)

// rule is one threshold condition for an activity: if match holds for
// the summary, points are added and reason joins the explanation.
// Rules are evaluated independently; order matters only for reason
// composition (primary factor first).
type rule struct {
	points int
	match  func(weather.WeatherSummary) bool
	reason string
}

// ruleTable returns the ordered rules for the given activity type.
// Adding an activity means adding a case here; the switch is exhaustive
// over Types.
func ruleTable(t Type) []rule {
	switch t {
	case Surfing:
		return []rule{
			{30, func(s weather.WeatherSummary) bool { return s.WindSpeedMax >= 25 }, "wind creates rideable swells"},
			{20, func(s weather.WeatherSummary) bool { return s.Precipitation < 2 }, "good visibility, minimal rain"},
			{20, func(s weather.WeatherSummary) bool { return s.TemperatureMax > 18 }, "warm enough for extended water time"},
		}
	case Skiing:
		return []rule{
			{40, func(s weather.WeatherSummary) bool { return s.TemperatureMax < 5 }, "excellent snow conditions"},
			{20, func(s weather.WeatherSummary) bool { return s.Precipitation > 2 }, "fresh snow accumulation"},
		}
	case OutdoorSightseeing:
		return []rule{
			{40, func(s weather.WeatherSummary) bool { return s.Precipitation < 1 }, "clear, dry skies"},
			{30, func(s weather.WeatherSummary) bool { return s.TemperatureMax >= 18 && s.TemperatureMax <= 28 }, "comfortable temperature"},
		}
	case IndoorSightseeing:
		return []rule{
			{40, func(s weather.WeatherSummary) bool { return s.Precipitation > 4 }, "heavy rain favors indoor activities"},
			{20, func(s weather.WeatherSummary) bool { return s.WindSpeedMax > 30 }, "strong wind discourages outdoor activities"},
		}
	}
	return nil
}

// defaultReason is the fixed explanation used when none of an activity's
// rules match. Reason text is never empty.
func defaultReason(t Type) string {
	switch t {
	case Surfing:
		return "calm wind, rain, or cold water make surfing unappealing"
	case Skiing:
		return "too warm and dry for good snow"
	case OutdoorSightseeing:
		return "rain or uncomfortable temperatures spoil time outside"
	case IndoorSightseeing:
		return "pleasant weather outside makes indoor activities less compelling"
	}
	return "conditions do not favor this activity"
}

// MaxScore returns the maximum attainable score for an activity, the sum
// of all its rule points.
func MaxScore(t Type) int {
	var max int
	for _, r := range ruleTable(t) {
		max += r.points
	}
	return max
}
