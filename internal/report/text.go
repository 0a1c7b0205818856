package report

import (
	"fmt"
	"io"
	"sort"

	"calstats/internal/stats"
)

// WriteText writes the human-readable report. Patterns keep file order;
// weeks and months print chronologically, which their key formats make a
// plain string sort.
func WriteText(w io.Writer, r *Report) error {
	if len(r.Unmatched) > 0 {
		fmt.Fprintln(w, "Events that did not fit the patterns:")
		for _, u := range r.Unmatched {
			fmt.Fprintf(w, "%s | %s | %s\n", u.Start.Format("2006-01-02 15:04"), u.Summary, u.Duration)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Event Distribution by Day:")
	for _, name := range r.Patterns {
		fmt.Fprintf(w, "\n%s:\n", name)
		dist := r.DayDistribution[name]
		for _, day := range stats.Weekdays {
			s := dist[day]
			fmt.Fprintf(w, "  %s: %d events, %.1f hours, %.1f hours/event\n",
				day, s.Count, s.TotalHours, s.AvgHours)
		}
	}

	fmt.Fprintln(w, "\nTime Spent on Each Event Type:")
	for _, name := range r.Patterns {
		fmt.Fprintf(w, "%s: %.1f hours\n", name, r.TimeSpent[name])
	}

	fmt.Fprintln(w, "\nWeekly Statistics:")
	for _, name := range r.Patterns {
		fmt.Fprintf(w, "\n%s:\n", name)
		for _, week := range sortedKeys(r.Weekly[name]) {
			s := r.Weekly[name][week]
			fmt.Fprintf(w, "  Week of %s: %.1f hours, %.1f hours/day\n",
				week, s.TotalHours, s.AvgHours)
		}
	}

	fmt.Fprintln(w, "\nMonthly Statistics:")
	for _, name := range r.Patterns {
		fmt.Fprintf(w, "\n%s:\n", name)
		for _, month := range sortedKeys(r.Monthly[name]) {
			s := r.Monthly[name][month]
			fmt.Fprintf(w, "  Month of %s: %.1f hours, %.1f hours/week, %d events\n",
				month, s.TotalHours, s.AvgHours, s.EventCount)
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
