package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "America/Los_Angeles"
	defaultPatterns = "patterns.txt"
	defaultOutput   = "calendar_analysis.xlsx"
)

// SourceConfig describes a single ICS subscription source that is always
// included in analysis, in addition to files given on the command line.
type SourceConfig struct {
	// URL is the ICS endpoint (http, https or webcal).
	URL string `yaml:"url"`
	// ID is an internal identifier used for de-dup and logging.
	ID string `yaml:"id"`
}

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA timezone used as the canonical display zone.
	// Event times are converted into it before any bucketing.
	Timezone string `yaml:"timezone"`

	// WeekStart controls which weekday opens a week bucket. Supported values:
	//   - "monday" (default)
	//   - "sunday"
	WeekStart string `yaml:"week_start"`

	// Patterns is the default path of the patterns file.
	Patterns string `yaml:"patterns"`

	// Output is the default path of the Excel report.
	Output string `yaml:"output"`

	// CacheDir holds the HTTP cache for remote ICS sources.
	CacheDir string `yaml:"cache_dir"`

	// Sources is the list of subscribed ICS sources.
	Sources []SourceConfig `yaml:"sources"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	cfg := &Config{
		Timezone:  defaultTimezone,
		WeekStart: "monday",
		Patterns:  defaultPatterns,
		Output:    defaultOutput,
		Sources:   []SourceConfig{},
	}
	cfg.Normalize()
	return cfg
}

// Normalize fills in missing/zero values with defaults so that
// partially-filled configs (e.g., older versions) still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	// WeekStart default & validation.
	switch c.WeekStart {
	case "monday", "sunday":
		// ok
	default:
		c.WeekStart = "monday"
	}
	if c.Patterns == "" {
		c.Patterns = defaultPatterns
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			c.CacheDir = filepath.Join(dir, "calstats")
		} else {
			c.CacheDir = filepath.Join(".", ".calstats-cache")
		}
	}
	if c.Sources == nil {
		c.Sources = []SourceConfig{}
	}
	for i := range c.Sources {
		if c.Sources[i].ID == "" {
			c.Sources[i].ID = fmt.Sprintf("src%d", i+1)
		}
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// WeekStartDay maps the configured week start onto a time.Weekday.
func (c *Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".calstats-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Set permissions to 0600 on temp file before rename.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	// Rename over the target path.
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the package-level
// Save function:
//
//	cfg, _ := config.Load(path)
//	// ... mutate cfg ...
//	if err := cfg.Save(path); err != nil { ... }
func (c *Config) Save(path string) error {
	return Save(path, c)
}
