package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calendar wraps VEVENT bodies into a VCALENDAR with CRLF line endings.
func calendar(events ...string) []byte {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//calstats//test//EN\r\n")
	for _, ev := range events {
		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(ev), "\n", "\r\n"))
		b.WriteString("\r\nEND:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	return []byte(b.String())
}

func TestParseICS(t *testing.T) {
	t.Parallel()

	src := Source{ID: "test", URL: "test.ics"}

	t.Run("timed event", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev1
DTSTART:20250106T100000Z
DTEND:20250106T113000Z
SUMMARY:Team standup
DESCRIPTION:Weekly sync
LOCATION:Room 4`))
		require.NoError(t, err)
		require.Len(t, events, 1)

		ev := events[0]
		assert.Equal(t, "ev1", ev.UID)
		assert.Equal(t, "Team standup", ev.Summary)
		assert.Equal(t, "Weekly sync", ev.Description)
		assert.Equal(t, "Room 4", ev.Location)
		assert.False(t, ev.AllDay)
		assert.True(t, ev.Start.Equal(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)))
		assert.True(t, ev.End.Equal(time.Date(2025, 1, 6, 11, 30, 0, 0, time.UTC)))
		assert.Equal(t, "Team standup Weekly sync Room 4", ev.SearchText())
	})

	t.Run("zoned event keeps its own zone", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev-ny
DTSTART;TZID=America/New_York:20250106T100000
DTEND;TZID=America/New_York:20250106T110000
SUMMARY:East coast call`))
		require.NoError(t, err)
		require.Len(t, events, 1)

		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		assert.True(t, events[0].Start.Equal(time.Date(2025, 1, 6, 10, 0, 0, 0, ny)))
	})

	t.Run("missing DTEND defaults to one hour", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev2
DTSTART:20250106T100000Z
SUMMARY:Quick chat`))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, time.Hour, events[0].End.Sub(events[0].Start))
	})

	t.Run("all-day via VALUE=DATE", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev3
DTSTART;VALUE=DATE:20250107
DTEND;VALUE=DATE:20250108
SUMMARY:Conference day`))
		require.NoError(t, err)
		require.Len(t, events, 1)

		ev := events[0]
		assert.True(t, ev.AllDay)
		y, m, d := ev.Start.Date()
		assert.Equal(t, 2025, y)
		assert.Equal(t, time.January, m)
		assert.Equal(t, 7, d)
		assert.Equal(t, 24*time.Hour, ev.End.Sub(ev.Start))
	})

	t.Run("all-day without DTEND spans one day", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev4
DTSTART;VALUE=DATE:20250107
SUMMARY:Holiday`))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].AllDay)
		assert.Equal(t, 24*time.Hour, events[0].End.Sub(events[0].Start))
	})

	t.Run("recurrence fields", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
UID:ev5
DTSTART:20250106T100000Z
DTEND:20250106T110000Z
RRULE:FREQ=WEEKLY;COUNT=4
EXDATE:20250113T100000Z,20250120T100000Z
SUMMARY:Weekly review`, `
UID:ev5
RECURRENCE-ID:20250127T100000Z
DTSTART:20250127T120000Z
DTEND:20250127T130000Z
SUMMARY:Weekly review (moved)`))
		require.NoError(t, err)
		require.Len(t, events, 2)

		base := events[0]
		assert.Equal(t, "FREQ=WEEKLY;COUNT=4", base.RawRRule)
		require.Len(t, base.ExDates, 2)
		assert.True(t, base.ExDates[0].Equal(time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)))
		assert.False(t, base.IsOverride)

		override := events[1]
		assert.True(t, override.IsOverride)
		require.NotNil(t, override.Recurrence)
		assert.True(t, override.Recurrence.Equal(time.Date(2025, 1, 27, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("event without UID is skipped", func(t *testing.T) {
		t.Parallel()

		events, err := ParseICS(src, calendar(`
DTSTART:20250106T100000Z
SUMMARY:Anonymous`, `
UID:ev6
DTSTART:20250106T100000Z
SUMMARY:Named`))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "ev6", events[0].UID)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		_, err := ParseICS(src, nil)
		assert.Error(t, err)
	})
}
