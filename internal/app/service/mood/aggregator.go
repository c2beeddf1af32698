package mood

import (
	"github.com/samber/lo"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
)

// Stats summarizes a user's mood history for the dashboard.
type Stats struct {
	Average      float64 `json:"average"`
	Highest      float64 `json:"highest"`
	Lowest       float64 `json:"lowest"`
	TotalEntries int     `json:"totalEntries"`
}

// Point is one sample of the dashboard mood chart.
type Point struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// Aggregate computes average/highest/lowest/count over the entry list.
// Pure function: deterministic for the same input, no side effects. An empty
// history yields explicit zeros, never NaN.
func Aggregate(entries []*models.JournalEntry) Stats {
	if len(entries) == 0 {
		return Stats{}
	}
	scores := lo.Map(entries, func(e *models.JournalEntry, _ int) float64 { return e.MoodScore })
	return Stats{
		Average:      lo.Sum(scores) / float64(len(scores)),
		Highest:      lo.Max(scores),
		Lowest:       lo.Min(scores),
		TotalEntries: len(entries),
	}
}

// MonthlyAverages groups mean mood score by calendar month name. The key is
// the month name only, so the same month across different years collapses
// into one bucket; kept that way to preserve the observed dashboard grouping.
func MonthlyAverages(entries []*models.JournalEntry) map[string]float64 {
	out := make(map[string]float64, 12)
	for label, group := range lo.GroupBy(entries, func(e *models.JournalEntry) string { return e.MonthLabel() }) {
		sum := lo.SumBy(group, func(e *models.JournalEntry) float64 { return e.MoodScore })
		out[label] = sum / float64(len(group))
	}
	return out
}

// Series renders the chart series in input order.
func Series(entries []*models.JournalEntry) []Point {
	return lo.Map(entries, func(e *models.JournalEntry, _ int) Point {
		return Point{Date: e.CreatedAt.Format("Jan 2"), Score: e.MoodScore}
	})
}
