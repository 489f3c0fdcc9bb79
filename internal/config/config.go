package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hpungsan/wodgen/internal/exercise"
)

// FileName is the config file looked up inside the exercise library directory.
const FileName = "config.json"

// Config holds application configuration.
type Config struct {
	// SnoozeDays is how long a used exercise stays out of the pool.
	SnoozeDays int `json:"snooze_days"`

	// DefaultGroups is used when no group count is given on the command line.
	DefaultGroups int `json:"default_groups"`

	// DefaultLevel is used when no level is given. Matched case-insensitively.
	DefaultLevel string `json:"default_level"`

	// BodyweightOnly restricts the pool to bodyweight exercises unless a
	// request says otherwise.
	BodyweightOnly bool `json:"bodyweight_only,omitempty"`

	// IntermediateIncludesBeginner lets intermediate workouts draw beginner
	// exercises too. Off by default.
	IntermediateIncludesBeginner bool `json:"intermediate_includes_beginner,omitempty"`

	// WorkoutsDir is where generated workouts are written. Relative paths
	// resolve against the working directory. Empty means ./workouts.
	WorkoutsDir string `json:"workouts_dir,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SnoozeDays:    7,
		DefaultGroups: 2,
		DefaultLevel:  string(exercise.Intermediate),
	}
}

// Load loads configuration from dir/config.json.
// Returns default config if the file doesn't exist.
func Load(dir string) (*Config, error) {
	return loadFile(filepath.Join(dir, FileName))
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path on top of the defaults.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return merged, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.SnoozeDays = overlay.SnoozeDays
	if result.SnoozeDays == 0 {
		result.SnoozeDays = base.SnoozeDays
	}

	result.DefaultGroups = overlay.DefaultGroups
	if result.DefaultGroups == 0 {
		result.DefaultGroups = base.DefaultGroups
	}

	result.DefaultLevel = strings.TrimSpace(overlay.DefaultLevel)
	if result.DefaultLevel == "" {
		result.DefaultLevel = base.DefaultLevel
	}

	result.WorkoutsDir = strings.TrimSpace(overlay.WorkoutsDir)
	if result.WorkoutsDir == "" {
		result.WorkoutsDir = base.WorkoutsDir
	}

	// Booleans: overlay wins if true, else base
	result.BodyweightOnly = base.BodyweightOnly || overlay.BodyweightOnly
	result.IntermediateIncludesBeginner = base.IntermediateIncludesBeginner || overlay.IntermediateIncludesBeginner

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// Validate rejects values no workout can be generated with.
func (c *Config) Validate() error {
	if c.SnoozeDays < 0 {
		return fmt.Errorf("snooze_days must be non-negative, got %d", c.SnoozeDays)
	}
	if c.DefaultGroups < 0 {
		return fmt.Errorf("default_groups must be non-negative, got %d", c.DefaultGroups)
	}
	if _, err := exercise.ParseLevel(c.DefaultLevel); err != nil {
		return fmt.Errorf("default_level: %w", err)
	}
	return nil
}

// Level returns DefaultLevel parsed, falling back to Intermediate.
func (c *Config) Level() exercise.Level {
	if l, err := exercise.ParseLevel(c.DefaultLevel); err == nil {
		return l
	}
	return exercise.Intermediate
}

// SnoozePeriod returns SnoozeDays as a duration.
func (c *Config) SnoozePeriod() time.Duration {
	return time.Duration(c.SnoozeDays) * 24 * time.Hour
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
