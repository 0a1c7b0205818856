package ics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRemote(t *testing.T) {
	t.Parallel()

	assert.True(t, Source{URL: "https://example.com/cal.ics"}.Remote())
	assert.True(t, Source{URL: "http://example.com/cal.ics"}.Remote())
	assert.True(t, Source{URL: "webcal://example.com/cal.ics"}.Remote())
	assert.False(t, Source{URL: "work.ics"}.Remote())
	assert.False(t, Source{URL: "/home/u/calendars/work.ics"}.Remote())
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/cal.ics", normalizeURL("webcal://example.com/cal.ics"))
	assert.Equal(t, "https://example.com/cal.ics", normalizeURL("https://example.com/cal.ics"))
}

func TestSourceRedacted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "work.ics", Source{URL: "work.ics"}.Redacted())
	assert.Equal(t, "https://example.com/...(redacted)",
		Source{URL: "https://example.com/secret.ics"}.Redacted())
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	icsBody := calendar(`
UID:ev1
DTSTART:20250106T100000Z
DTEND:20250106T110000Z
SUMMARY:Local event`)

	t.Run("local file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "work.ics")
		require.NoError(t, os.WriteFile(path, icsBody, 0o644))

		events, err := LoadAll(context.Background(), NewFetcher(t.TempDir()),
			[]Source{{ID: "work", URL: path}})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Local event", events[0].Summary)
		assert.Equal(t, "work", events[0].Source.ID)
	})

	t.Run("remote source", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(icsBody)
		}))
		defer srv.Close()

		events, err := LoadAll(context.Background(), NewFetcher(t.TempDir()),
			[]Source{{ID: "team", URL: srv.URL}})
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("any broken source fails the run", func(t *testing.T) {
		t.Parallel()

		good := filepath.Join(t.TempDir(), "good.ics")
		require.NoError(t, os.WriteFile(good, icsBody, 0o644))
		missing := filepath.Join(t.TempDir(), "missing.ics")

		_, err := LoadAll(context.Background(), NewFetcher(t.TempDir()), []Source{
			{ID: "good", URL: good},
			{ID: "bad", URL: missing},
		})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "missing.ics"))
	})
}
