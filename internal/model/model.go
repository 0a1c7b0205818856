package model

import "time"

// Occurrence represents a single concrete instance of an event
// (after recurrence expansion and timezone normalization).
type Occurrence struct {
	SourceID string // calendar source ID
	UID      string // iCalendar UID

	// InstanceKey uniquely identifies a single occurrence of a recurring
	// event, derived from the normalized start time.
	InstanceKey string

	Summary     string
	Description string
	Location    string

	AllDay bool

	// Start / End are in the configured display timezone.
	Start time.Time
	End   time.Time
}

// Duration returns the occurrence length. All-day entries report zero:
// they count as events but contribute no tracked hours.
func (o Occurrence) Duration() time.Duration {
	if o.AllDay {
		return 0
	}
	return o.End.Sub(o.Start)
}

// Hours returns the duration in fractional hours.
func (o Occurrence) Hours() float64 {
	return o.Duration().Hours()
}

// SearchText returns the text that classification patterns match against:
// summary, description and location joined by single spaces.
func (o Occurrence) SearchText() string {
	return o.Summary + " " + o.Description + " " + o.Location
}
