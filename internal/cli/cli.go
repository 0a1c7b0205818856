// Package cli wires the calstats commands: calendar analysis and patterns
// bootstrap over the ics/pattern/stats/report pipeline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"calstats/internal/config"
	appLog "calstats/internal/log"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command with the analyze and patterns
// subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "calstats",
		Short: "Analyze time spent on calendar events",
		Long: `calstats reads one or more iCalendar (.ics) files or feeds, matches
events against a set of named regex patterns and aggregates matched time
into day/week/month statistics plus an Excel report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				appLog.SetLevel(appLog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (created with defaults if missing)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newPatternsCmd())

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		appLog.Error("command failed", err)
		return ExitError
	}
	return ExitSuccess
}

// loadConfig resolves the effective configuration: built-in defaults when no
// --config was given, otherwise the YAML file (written with defaults on
// first run).
func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", flagConfig, err)
	}
	return cfg, nil
}
