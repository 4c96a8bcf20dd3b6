// Package activity scores and ranks activity types against a period-
// averaged weather summary using additive, data-driven rule tables.
package activity

// Type is a normalized activity category.
type Type string

const (
	Surfing            Type = "SURFING"
	Skiing             Type = "SKIING"
	OutdoorSightseeing Type = "OUTDOOR_SIGHTSEEING"
	IndoorSightseeing  Type = "INDOOR_SIGHTSEEING"
)

// Types lists all activity types in canonical declaration order. Scoring
// emits one entry per type in this order, and ranking ties break on it.
var Types = []Type{Surfing, Skiing, OutdoorSightseeing, IndoorSightseeing}

// Score is the outcome of evaluating one activity's rules against a
// weather summary. Reason is always non-empty: either the joined
// fragments of the matched rules, or the activity's unfavorable default.
type Score struct {
	Activity Type   `json:"activity"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
}

// RankingResult holds all activity scores sorted descending by score
// (ties in canonical order) and the top recommendation.
type RankingResult struct {
	Scores      []Score `json:"scores"`
	Recommended Type    `json:"recommended"`
}
