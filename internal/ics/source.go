package ics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	appLog "calstats/internal/log"
)

// Source identifies a single calendar to analyze. URL is either a local
// .ics path or an http(s)/webcal endpoint.
type Source struct {
	// ID is an internal identifier used for de-dup and logging.
	ID string
	// URL is the ICS endpoint or file path.
	URL string
}

// Remote reports whether the source must be fetched over HTTP.
func (s Source) Remote() bool {
	return strings.HasPrefix(s.URL, "http://") ||
		strings.HasPrefix(s.URL, "https://") ||
		strings.HasPrefix(s.URL, "webcal://")
}

// Redacted returns a form of the source safe for logging. Local paths pass
// through; remote URLs are stripped down to their host.
func (s Source) Redacted() string {
	if s.Remote() {
		return redactURL(s.URL)
	}
	return s.URL
}

// normalizeURL rewrites webcal:// subscription links to https.
func normalizeURL(u string) string {
	if rest, ok := strings.CutPrefix(u, "webcal://"); ok {
		return "https://" + rest
	}
	return u
}

// LoadAll reads and parses every source: local files directly, remote feeds
// through the fetcher. Any source that yields no events is an error for the
// whole run; silently analyzing a partial calendar set would skew every
// statistic. Errors are collected so one run reports all broken sources.
func LoadAll(ctx context.Context, fetcher *Fetcher, sources []Source) ([]ParsedEvent, error) {
	var (
		events []ParsedEvent
		errs   []error
	)

	for _, src := range sources {
		body, err := loadBody(ctx, fetcher, src)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", src.Redacted(), err))
			continue
		}

		parsed, err := ParseICS(src, body)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", src.Redacted(), err))
			continue
		}

		appLog.Debug("source loaded", "id", src.ID, "source", src.Redacted(), "events", len(parsed))
		events = append(events, parsed...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return events, nil
}

func loadBody(ctx context.Context, fetcher *Fetcher, src Source) ([]byte, error) {
	if !src.Remote() {
		return os.ReadFile(src.URL)
	}
	res, err := fetcher.FetchOne(ctx, Source{ID: src.ID, URL: normalizeURL(src.URL)})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}
