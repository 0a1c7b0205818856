package stats

import (
	"fmt"
	"math"
	"time"
)

// Matrix is the day-by-pattern hour grid behind the Excel report: one column
// per calendar day of the analysis range, one row per pattern.
type Matrix struct {
	Days   []time.Time `json:"-"`
	Labels []string    `json:"labels"` // one D-M-YYYY label per day
	Rows   []MatrixRow `json:"rows"`
}

// MatrixRow is one pattern's daily hours, parallel to Matrix.Labels.
// Values are rounded to one decimal; zero renders as an empty cell.
type MatrixRow struct {
	Pattern string    `json:"pattern"`
	Hours   []float64 `json:"hours"`
}

// DailyMatrix sums each pattern's hours per calendar day of [start, end].
// A day's cell counts the occurrences whose start date falls on that day.
func DailyMatrix(c *Classification, start, end time.Time) *Matrix {
	m := &Matrix{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		m.Days = append(m.Days, d)
		m.Labels = append(m.Labels, fmt.Sprintf("%d-%d-%d", d.Day(), int(d.Month()), d.Year()))
	}

	for _, name := range c.Order {
		row := MatrixRow{Pattern: name, Hours: make([]float64, len(m.Days))}
		for i, day := range m.Days {
			total := 0.0
			for _, occ := range c.ByPattern[name] {
				if sameDate(occ.Start, day) {
					total += occ.Hours()
				}
			}
			if total > 0 {
				row.Hours[i] = Round1(total)
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
