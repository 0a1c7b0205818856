package stats

import (
	"time"
)

// Weekdays lists weekday names in report order. Index 0 is Monday.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayStat aggregates one pattern's occurrences on one weekday.
type DayStat struct {
	Count      int     `json:"count"`
	TotalHours float64 `json:"total_hours"`
	AvgHours   float64 `json:"avg_hours"` // hours per event
}

// WeekStat aggregates one pattern's hours within one week.
type WeekStat struct {
	TotalHours float64 `json:"total_hours"`
	AvgHours   float64 `json:"avg_hours"` // hours per day
}

// MonthStat aggregates one pattern's hours within one calendar month.
type MonthStat struct {
	TotalHours float64 `json:"total_hours"`
	AvgHours   float64 `json:"avg_hours"` // hours per week
	EventCount int     `json:"event_count"`
}

// DayDistribution buckets each pattern's occurrences by weekday name.
// All-day occurrences increment Count but contribute zero hours.
func DayDistribution(c *Classification) map[string]map[string]DayStat {
	out := make(map[string]map[string]DayStat, len(c.Order))
	for _, name := range c.Order {
		dist := make(map[string]DayStat, len(Weekdays))
		for _, day := range Weekdays {
			dist[day] = DayStat{}
		}
		for _, occ := range c.ByPattern[name] {
			day := Weekdays[mondayIndex(occ.Start)]
			s := dist[day]
			s.Count++
			s.TotalHours += occ.Hours()
			dist[day] = s
		}
		for day, s := range dist {
			if s.Count > 0 {
				s.AvgHours = s.TotalHours / float64(s.Count)
				dist[day] = s
			}
		}
		out[name] = dist
	}
	return out
}

// TimeSpent sums hours per pattern across the whole range.
func TimeSpent(c *Classification) map[string]float64 {
	out := make(map[string]float64, len(c.Order))
	for _, name := range c.Order {
		total := 0.0
		for _, occ := range c.ByPattern[name] {
			total += occ.Hours()
		}
		out[name] = total
	}
	return out
}

// Weekly buckets each pattern's hours by week. Keys are the YYYY-MM-DD date
// of the week's first day. The average divides by a full seven days
// regardless of how much of the week the analysis range covers.
func Weekly(c *Classification, weekStart time.Weekday) map[string]map[string]WeekStat {
	out := make(map[string]map[string]WeekStat, len(c.Order))
	for _, name := range c.Order {
		weeks := make(map[string]WeekStat)
		for _, occ := range c.ByPattern[name] {
			key := WeekKey(occ.Start, weekStart)
			s := weeks[key]
			s.TotalHours += occ.Hours()
			weeks[key] = s
		}
		for key, s := range weeks {
			s.AvgHours = s.TotalHours / 7
			weeks[key] = s
		}
		out[name] = weeks
	}
	return out
}

// Monthly buckets each pattern's hours and event counts by YYYY-MM month.
// The average is hours per week, dividing by days-in-month/7.
func Monthly(c *Classification) map[string]map[string]MonthStat {
	out := make(map[string]map[string]MonthStat, len(c.Order))
	for _, name := range c.Order {
		months := make(map[string]MonthStat)
		for _, occ := range c.ByPattern[name] {
			key := occ.Start.Format("2006-01")
			s := months[key]
			s.TotalHours += occ.Hours()
			s.EventCount++
			months[key] = s
		}
		for key, s := range months {
			t, err := time.Parse("2006-01", key)
			if err != nil {
				continue
			}
			weeksInMonth := float64(daysInMonth(t.Year(), t.Month())) / 7
			s.AvgHours = s.TotalHours / weeksInMonth
			months[key] = s
		}
		out[name] = months
	}
	return out
}

// WeekKey returns the YYYY-MM-DD date of the first day of the week
// (starting on weekStart) containing t.
func WeekKey(t time.Time, weekStart time.Weekday) string {
	delta := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -delta).Format("2006-01-02")
}

// mondayIndex maps time.Weekday (Sunday=0) onto Weekdays (Monday=0).
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysInMonth relies on time.Date normalizing day 0 of the next month to the
// last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
