// Package config defines the immutable configuration for one organize run
// and its YAML persistence for the CLI and GUI shells.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"yearsort/internal/errors"

	"gopkg.in/yaml.v3"
)

// DuplicateMode selects how an existing destination is handled.
type DuplicateMode string

const (
	// DuplicateInteractive prompts per conflict.
	DuplicateInteractive DuplicateMode = "interactive"
	// DuplicateSkip leaves the source entry in place.
	DuplicateSkip DuplicateMode = "skip"
	// DuplicateRename moves under a timestamped name.
	DuplicateRename DuplicateMode = "rename"
	// DuplicateOverwrite replaces the destination file after confirmation.
	// Directories are never overwritten.
	DuplicateOverwrite DuplicateMode = "overwrite"
	// DuplicateMerge folds a source directory's contents into the existing
	// destination directory. Files fall back to rename under this mode.
	DuplicateMerge DuplicateMode = "merge"
)

// SettingsFileName is the per-directory settings file the GUI writes. The
// engine skips it during enumeration so a run never relocates its own
// resources, the way the original shell scripts skipped themselves.
const SettingsFileName = ".yearsort.yaml"

// DefaultExcludedFolders are destination year folders from prior runs.
// They are excluded by default so a re-run does not file year folders inside
// other year folders; an explicit include list overrides this.
var DefaultExcludedFolders = []string{"2020", "2021", "2022", "2023", "2024", "2025", "2026"}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Config is the configuration for one organize run. It is built once by the
// CLI or GUI shell and treated as read-only by the engine.
type Config struct {
	SourceDir string `yaml:"source_dir"` // directory whose top-level entries are organized
	TargetDir string `yaml:"target_dir"` // base for year folders, defaults to SourceDir

	// DryRun is deliberately not persisted. A loaded configuration always
	// starts with DryRun enabled so a stale settings file can never cause
	// an unreviewed reorganization.
	DryRun bool `yaml:"-"`

	FilesOnly     bool          `yaml:"files_only"`
	TargetYear    string        `yaml:"target_year"` // optional 4-digit year filter
	FileTypes     []string      `yaml:"file_types"`  // optional extension allow-list, no leading dot
	Interactive   bool          `yaml:"interactive"`
	DuplicateMode DuplicateMode `yaml:"duplicate_mode"`

	IncludedFolders []string `yaml:"included_folders"` // allow-list; wins over all exclusions
	ExcludedFolders []string `yaml:"excluded_folders"` // deny-list; ignored when includes are set

	Verbose bool `yaml:"verbose"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures the optional watch mode.
type WatchConfig struct {
	DebounceSeconds int      `yaml:"debounce_seconds"` // quiet period before a run triggers
	Ignore          []string `yaml:"ignore"`           // glob patterns for events to ignore
}

// New returns a configuration with safe defaults.
func New() *Config {
	return &Config{
		DryRun:        true, // safe by default
		DuplicateMode: DuplicateRename,
		Watch: WatchConfig{
			DebounceSeconds: 2,
		},
	}
}

// DefaultPath returns the default configuration file location
// (~/.config/yearsort/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "yearsort", "config.yaml"), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file, merged over defaults.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if loaded.SourceDir != "" {
		cfg.SourceDir = loaded.SourceDir
	}
	if loaded.TargetDir != "" {
		cfg.TargetDir = loaded.TargetDir
	}
	cfg.FilesOnly = loaded.FilesOnly
	cfg.TargetYear = loaded.TargetYear
	if len(loaded.FileTypes) > 0 {
		cfg.FileTypes = loaded.FileTypes
	}
	cfg.Interactive = loaded.Interactive
	if loaded.DuplicateMode != "" {
		cfg.DuplicateMode = loaded.DuplicateMode
	}
	if len(loaded.IncludedFolders) > 0 {
		cfg.IncludedFolders = loaded.IncludedFolders
	}
	if len(loaded.ExcludedFolders) > 0 {
		cfg.ExcludedFolders = loaded.ExcludedFolders
	}
	cfg.Verbose = loaded.Verbose
	if loaded.Watch.DebounceSeconds > 0 {
		cfg.Watch.DebounceSeconds = loaded.Watch.DebounceSeconds
	}
	if len(loaded.Watch.Ignore) > 0 {
		cfg.Watch.Ignore = loaded.Watch.Ignore
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories when
// needed. The DryRun flag is excluded by its yaml tag and therefore never
// reaches disk.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks whether the configuration describes a runnable organize
// call. Validation failures are startup errors; the run never begins.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", nil)
	}

	if c.SourceDir == "" {
		return errors.NewConfigError("source directory is required", "source_dir", nil)
	}
	info, err := os.Stat(c.SourceDir)
	if err != nil {
		return errors.NewConfigError("source directory is not accessible", c.SourceDir, err)
	}
	if !info.IsDir() {
		return errors.NewConfigError("source path is not a directory", c.SourceDir, nil)
	}

	// The target base need not exist yet; year folders are created on
	// demand. But if it exists it must be a directory.
	if c.TargetDir != "" {
		if info, err := os.Stat(c.TargetDir); err == nil && !info.IsDir() {
			return errors.NewConfigError("target path is not a directory", c.TargetDir, nil)
		}
	}

	if c.TargetYear != "" && !yearPattern.MatchString(c.TargetYear) {
		return errors.NewConfigError("year filter must be a 4-digit year", c.TargetYear, nil)
	}

	for _, ext := range c.FileTypes {
		if ext == "" {
			return errors.NewConfigError("file type filter contains an empty extension", "file_types", nil)
		}
	}

	switch c.DuplicateMode {
	case DuplicateInteractive, DuplicateSkip, DuplicateRename, DuplicateOverwrite, DuplicateMerge:
	default:
		return errors.NewConfigError("invalid duplicate mode", string(c.DuplicateMode), nil)
	}

	if c.Watch.DebounceSeconds < 1 {
		return errors.NewConfigError("watch debounce must be >= 1 second", "watch.debounce_seconds", nil)
	}

	return nil
}

// EffectiveTarget returns the target base directory, falling back to the
// source directory when unset.
func (c *Config) EffectiveTarget() string {
	if c.TargetDir != "" {
		return c.TargetDir
	}
	return c.SourceDir
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(sourceDir string) *Config {
	cfg := New()
	cfg.SourceDir = sourceDir
	cfg.DryRun = false
	return cfg
}
