package activity

import (
	"sort"

	"github.com/surfseek/activityrank/internal/weather"
)

// Rank scores all activities against the summary and orders them by
// score descending. Ties keep canonical declaration order (ScoreAll
// emits in that order and the sort is stable), so identical input always
// yields an identical ranking. The recommendation is the first entry.
func Rank(summary weather.WeatherSummary) RankingResult {
	scores := ScoreAll(summary)

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return RankingResult{
		Scores:      scores,
		Recommended: scores[0].Activity,
	}
}
