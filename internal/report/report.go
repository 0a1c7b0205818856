// Package report renders the analysis results: a text or JSON report on
// stdout and an Excel day-by-pattern matrix on disk.
package report

import (
	"time"

	"calstats/internal/model"
	"calstats/internal/stats"
)

// UnmatchedEvent is one occurrence no pattern matched, in report form.
type UnmatchedEvent struct {
	Start    time.Time `json:"start"`
	Summary  string    `json:"summary"`
	Duration string    `json:"duration"`
}

// Report bundles every statistic of one analysis run. The same struct backs
// the text report, the JSON output and the Excel matrix.
type Report struct {
	RangeStart time.Time `json:"range_start"`
	RangeEnd   time.Time `json:"range_end"`

	// Patterns lists pattern names in patterns-file order; every section
	// below iterates patterns in this order.
	Patterns []string `json:"patterns"`

	DayDistribution map[string]map[string]stats.DayStat   `json:"day_distribution"`
	TimeSpent       map[string]float64                    `json:"time_spent"`
	Weekly          map[string]map[string]stats.WeekStat  `json:"weekly"`
	Monthly         map[string]map[string]stats.MonthStat `json:"monthly"`

	Unmatched []UnmatchedEvent `json:"unmatched,omitempty"`

	Matrix *stats.Matrix `json:"daily_matrix"`
}

// Build assembles the full report from a classification.
func Build(c *stats.Classification, rangeStart, rangeEnd time.Time, weekStart time.Weekday) *Report {
	r := &Report{
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		Patterns:        c.Order,
		DayDistribution: stats.DayDistribution(c),
		TimeSpent:       stats.TimeSpent(c),
		Weekly:          stats.Weekly(c, weekStart),
		Monthly:         stats.Monthly(c),
		Matrix:          stats.DailyMatrix(c, rangeStart, rangeEnd),
	}
	for _, occ := range c.Unmatched {
		r.Unmatched = append(r.Unmatched, unmatched(occ))
	}
	return r
}

func unmatched(occ model.Occurrence) UnmatchedEvent {
	return UnmatchedEvent{
		Start:    occ.Start,
		Summary:  occ.Summary,
		Duration: occ.Duration().String(),
	}
}
