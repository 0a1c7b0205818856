package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"calstats/internal/config"
	"calstats/internal/ics"
	appLog "calstats/internal/log"
	"calstats/internal/pattern"
	"calstats/internal/report"
	"calstats/internal/stats"
)

var (
	flagStart     string
	flagEnd       string
	flagOutput    string
	flagPatterns  string
	flagFormat    string
	flagTimezone  string
	flagWeekStart string
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files-or-urls...]",
		Short: "Match calendar events against patterns and aggregate time statistics",
		Long: `Analyze loads the given .ics files or http(s) feeds (plus any sources
from the config file), matches each event occurrence against the patterns
file and writes day/week/month statistics to stdout and a day-by-pattern
matrix to an Excel workbook.

If the patterns file does not exist, a starter file is generated from the
calendars' event text and analysis is skipped so it can be edited first.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&flagStart, "start", "", "Range start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "Range end date, YYYY-MM-DD, inclusive (required)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Excel report path (default from config)")
	cmd.Flags().StringVar(&flagPatterns, "patterns", "", "Patterns file path (default from config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Stdout report format: text or json")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for normalization (overrides config)")
	cmd.Flags().StringVar(&flagWeekStart, "week-start", "", "First day of the week: monday or sunday (overrides config)")

	// MarkFlagRequired only errors for unknown flag names; both flags are
	// registered right above.
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	rangeStart, rangeEnd, err := parseRange(flagStart, flagEnd, loc)
	if err != nil {
		return err
	}

	sources := collectSources(args, cfg)
	if len(sources) == 0 {
		return errors.New("no calendar sources: pass .ics paths or URLs, or configure sources")
	}

	fetcher := ics.NewFetcher(cfg.CacheDir)
	events, err := ics.LoadAll(cmd.Context(), fetcher, sources)
	if err != nil {
		return err
	}
	appLog.Info("calendars loaded", "sources", len(sources), "events", len(events))

	patternsPath := cfg.Patterns
	if flagPatterns != "" {
		patternsPath = flagPatterns
	}

	// First run without a patterns file: bootstrap one from the event text
	// and stop so the user can edit it before any numbers are produced.
	if _, err := os.Stat(patternsPath); errors.Is(err, fs.ErrNotExist) {
		texts := make([]string, len(events))
		for i, ev := range events {
			texts[i] = ev.SearchText()
		}
		n, genErr := pattern.Generate(patternsPath, texts)
		if genErr != nil {
			return fmt.Errorf("generate %s: %w", patternsPath, genErr)
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"%s not found; generated %d starter patterns from your calendars.\nEdit it and run the analysis again.\n",
			patternsPath, n)
		return nil
	}

	set, err := pattern.Load(patternsPath)
	if err != nil {
		return err
	}

	res, err := ics.ExpandOccurrences(events, ics.ExpandConfig{
		DisplayLocation: loc,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
	})
	if err != nil {
		return err
	}
	appLog.Debug("occurrences expanded", "count", len(res.Occurrences))

	c := stats.Classify(set, res.Occurrences)
	rep := report.Build(c, rangeStart, rangeEnd, cfg.WeekStartDay())

	switch flagFormat {
	case "text":
		if err := report.WriteText(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	case "json":
		if err := report.WriteJSON(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format %q (must be 'text' or 'json')", flagFormat)
	}

	output := cfg.Output
	if flagOutput != "" {
		output = flagOutput
	}
	return report.WriteExcel(output, rep.Matrix)
}

// applyOverrides copies command-line overrides into the config and
// re-validates the result.
func applyOverrides(cfg *config.Config) error {
	if flagTimezone != "" {
		cfg.Timezone = flagTimezone
	}
	if flagWeekStart != "" {
		switch flagWeekStart {
		case "monday", "sunday":
			cfg.WeekStart = flagWeekStart
		default:
			return fmt.Errorf("invalid week-start %q (must be 'monday' or 'sunday')", flagWeekStart)
		}
	}
	cfg.Normalize()
	return nil
}

// parseRange turns the start/end dates into the inclusive analysis window:
// midnight of start through 23:59:59 of end, both in loc.
func parseRange(start, end string, loc *time.Location) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	s, err := time.ParseInLocation(layout, start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --start %q: %w", start, err)
	}
	e, err := time.ParseInLocation(layout, end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --end %q: %w", end, err)
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, fmt.Errorf("--end %s is before --start %s", end, start)
	}

	// Wall-clock end of day, not start plus a fixed duration: DST transition
	// days are not 24 hours long.
	return s, time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, 0, loc), nil
}

// collectSources merges positional file/URL arguments with the config's
// subscribed sources. Arguments get argN IDs, config sources keep their own.
func collectSources(args []string, cfg *config.Config) []ics.Source {
	sources := make([]ics.Source, 0, len(args)+len(cfg.Sources))
	for i, arg := range args {
		sources = append(sources, ics.Source{
			ID:  fmt.Sprintf("arg%d", i+1),
			URL: arg,
		})
	}
	for _, src := range cfg.Sources {
		sources = append(sources, ics.Source{ID: src.ID, URL: src.URL})
	}
	return sources
}
