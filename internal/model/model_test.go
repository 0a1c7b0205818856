package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccurrenceDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

	t.Run("timed", func(t *testing.T) {
		t.Parallel()

		occ := Occurrence{Start: start, End: start.Add(90 * time.Minute)}
		assert.Equal(t, 90*time.Minute, occ.Duration())
		assert.InDelta(t, 1.5, occ.Hours(), 1e-9)
	})

	t.Run("all-day contributes no hours", func(t *testing.T) {
		t.Parallel()

		occ := Occurrence{AllDay: true, Start: start, End: start.Add(24 * time.Hour)}
		assert.Equal(t, time.Duration(0), occ.Duration())
		assert.Zero(t, occ.Hours())
	})
}

func TestOccurrenceSearchText(t *testing.T) {
	t.Parallel()

	occ := Occurrence{Summary: "Standup", Description: "weekly sync", Location: "Room 4"}
	assert.Equal(t, "Standup weekly sync Room 4", occ.SearchText())

	empty := Occurrence{Summary: "Standup"}
	assert.Equal(t, "Standup  ", empty.SearchText())
}
