package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "America/Los_Angeles", cfg.Timezone)
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, "patterns.txt", cfg.Patterns)
	assert.Equal(t, "calendar_analysis.xlsx", cfg.Output)
	assert.NotEmpty(t, cfg.CacheDir)
	assert.NotNil(t, cfg.Sources)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		var cfg Config
		cfg.Normalize()
		assert.Equal(t, "America/Los_Angeles", cfg.Timezone)
		assert.Equal(t, "monday", cfg.WeekStart)
		assert.Equal(t, "patterns.txt", cfg.Patterns)
		assert.Equal(t, "calendar_analysis.xlsx", cfg.Output)
		assert.NotEmpty(t, cfg.CacheDir)
	})

	t.Run("rejects unknown week start", func(t *testing.T) {
		t.Parallel()

		cfg := Config{WeekStart: "wednesday"}
		cfg.Normalize()
		assert.Equal(t, "monday", cfg.WeekStart)
	})

	t.Run("assigns missing source IDs", func(t *testing.T) {
		t.Parallel()

		cfg := Config{Sources: []SourceConfig{
			{URL: "https://example.com/a.ics"},
			{URL: "https://example.com/b.ics", ID: "work"},
			{URL: "https://example.com/c.ics"},
		}}
		cfg.Normalize()
		assert.Equal(t, "src1", cfg.Sources[0].ID)
		assert.Equal(t, "work", cfg.Sources[1].ID)
		assert.Equal(t, "src3", cfg.Sources[2].ID)
	})
}

func TestWeekStartDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Monday, (&Config{WeekStart: "monday"}).WeekStartDay())
	assert.Equal(t, time.Sunday, (&Config{WeekStart: "sunday"}).WeekStartDay())
	assert.Equal(t, time.Monday, (&Config{}).WeekStartDay())
}

func TestLocation(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	cfg.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestLoadFirstRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf", "calstats.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", cfg.Timezone)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calstats.yaml")
	in := &Config{
		Timezone:  "Europe/Berlin",
		WeekStart: "sunday",
		Patterns:  "my-patterns.txt",
		Output:    "out.xlsx",
		CacheDir:  "/tmp/calstats-cache",
		Sources:   []SourceConfig{{URL: "webcal://example.com/cal.ics", ID: "team"}},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Load("")
	assert.Error(t, err)
}
