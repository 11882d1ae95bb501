// Package config provides configuration loading and validation for the CLI.
// The orchestrator snapshots the effective configuration at workflow start;
// changing it afterwards never affects an in-flight run.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/hr-screener/internal/types"
)

// weightSumTolerance absorbs float representation noise when checking that
// the four score weights sum to 1.0.
const weightSumTolerance = 1e-3

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Job       string   `json:"job,omitempty"`        // Path to the job posting JSON file
	CVDir     string   `json:"cv_dir,omitempty"`     // Directory scanned for CV files
	CVFiles   []string `json:"cv_files,omitempty"`   // Explicit CV file list (additive to CVDir)
	OutputDir string   `json:"output_dir,omitempty"` // Base directory for run snapshots

	// Shortlisting. The threshold is a pointer so an explicit 0 in a config
	// file is distinguishable from "not set".
	MaxShortlist      int      `json:"max_shortlist,omitempty" validate:"gte=0"`
	MinScoreThreshold *float64 `json:"min_score_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Scoring
	ScoreWeights *types.ScoreWeights `json:"score_weights,omitempty"`

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key (falls back to GEMINI_API_KEY)
	Model   string `json:"model,omitempty"`   // Override for the standard-tier model
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Config {
	weights := types.DefaultScoreWeights()
	threshold := 60.0
	return Config{
		OutputDir:         "output",
		MaxShortlist:      5,
		MinScoreThreshold: &threshold,
		ScoreWeights:      &weights,
	}
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field ranges and the score-weight invariant.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.ScoreWeights != nil {
		if err := validate.Struct(c.ScoreWeights); err != nil {
			return fmt.Errorf("config error: score_weights: %w", err)
		}
		if sum := c.ScoreWeights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
			return fmt.Errorf("config error: score_weights must sum to 1.0, got %.3f", sum)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.CVDir != "" {
		if _, err := os.Stat(c.CVDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv_dir not found: %s", c.CVDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.CVDir == "" {
		result.CVDir = defaults.CVDir
	}
	if len(result.CVFiles) == 0 {
		result.CVFiles = defaults.CVFiles
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.MaxShortlist == 0 {
		result.MaxShortlist = defaults.MaxShortlist
	}
	if result.MinScoreThreshold == nil {
		result.MinScoreThreshold = defaults.MinScoreThreshold
	}
	if result.ScoreWeights == nil {
		result.ScoreWeights = defaults.ScoreWeights
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}

// Weights returns the configured score weights, defaulting when unset.
func (c *Config) Weights() types.ScoreWeights {
	if c.ScoreWeights != nil {
		return *c.ScoreWeights
	}
	return types.DefaultScoreWeights()
}

// Threshold returns the configured shortlist score threshold, defaulting when
// unset.
func (c *Config) Threshold() float64 {
	if c.MinScoreThreshold != nil {
		return *c.MinScoreThreshold
	}
	return 60
}
