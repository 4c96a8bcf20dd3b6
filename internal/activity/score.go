package activity

import (
	"strings"

	"github.com/surfseek/activityrank/internal/weather"
)

// evaluate runs the activity's rules against the summary and returns the
// accumulated points plus the indices of matched rules. Purely numeric;
// reason text is rendered separately.
func evaluate(t Type, summary weather.WeatherSummary) (points int, matched []int) {
	for i, r := range ruleTable(t) {
		if r.match(summary) {
			points += r.points
			matched = append(matched, i)
		}
	}
	return points, matched
}

// renderReason joins the reason fragments of the matched rules with
// " and " in rule-declaration order, or falls back to the activity's
// default when nothing matched.
func renderReason(t Type, matched []int) string {
	if len(matched) == 0 {
		return defaultReason(t)
	}

	rules := ruleTable(t)
	fragments := make([]string, 0, len(matched))
	for _, i := range matched {
		fragments = append(fragments, rules[i].reason)
	}
	return strings.Join(fragments, " and ")
}

// ScoreAll evaluates every activity type against the summary and returns
// one Score per type in canonical declaration order, unsorted. Sorting
// and recommendation selection belong to Rank.
func ScoreAll(summary weather.WeatherSummary) []Score {
	scores := make([]Score, 0, len(Types))
	for _, t := range Types {
		points, matched := evaluate(t, summary)
		scores = append(scores, Score{
			Activity: t,
			Score:    points,
			Reason:   renderReason(t, matched),
		})
	}
	return scores
}
