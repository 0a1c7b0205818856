package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"calstats/internal/ics"
	"calstats/internal/pattern"
)

var flagGenPatterns string

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Manage the patterns file",
	}
	cmd.AddCommand(newPatternsGenerateCmd())
	return cmd
}

func newPatternsGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files-or-urls...]",
		Short: "Generate a starter patterns file from calendar event text",
		Long: `Generate extracts keywords from the summary, description and location
text of every event in the given calendars and writes one case-insensitive
rule per keyword. The result is a starting point meant to be edited down
to the patterns worth tracking.`,
		RunE: runPatternsGenerate,
	}
	cmd.Flags().StringVar(&flagGenPatterns, "patterns", "", "Patterns file to write (default from config)")
	return cmd
}

func runPatternsGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Patterns
	if flagGenPatterns != "" {
		path = flagGenPatterns
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		if err != nil {
			return err
		}
		return fmt.Errorf("%s already exists; delete it first to regenerate", path)
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

	texts := make([]string, len(events))
	for i, ev := range events {
		texts[i] = ev.SearchText()
	}
	n, err := pattern.Generate(path, texts)
	if err != nil {
		return fmt.Errorf("generate %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d patterns from %d events into %s. Edit it before analyzing.\n",
		n, len(events), path)
	return nil
}
