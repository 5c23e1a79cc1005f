package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'mentormatch config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns
// defaults. The matcher is expected to run usefully with no config file
// at all.
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.expandPaths(); err != nil {
			return nil, fmt.Errorf("failed to expand paths: %w", err)
		}
		return cfg, nil
	}

	return Load(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	c.Sheets.CredentialsPath, err = expandPath(c.Sheets.CredentialsPath)
	if err != nil {
		return err
	}

	c.Sheets.TokenPath, err = expandPath(c.Sheets.TokenPath)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Survey validation
	if c.Survey.TagDelimiter == "" {
		errs = append(errs, errors.New("survey.tag_delimiter is required"))
	}
	switch c.Survey.CapacitySource {
	case CapacityFromColumn, CapacityFromHours:
	default:
		errs = append(errs, fmt.Errorf("survey.capacity_source must be 'column' or 'hours', got '%s'", c.Survey.CapacitySource))
	}
	if c.Survey.FallbackHours < 0 {
		errs = append(errs, errors.New("survey.fallback_hours must not be negative"))
	}

	// Weights validation
	if c.Weights.InterestsMultiplier < 0 || c.Weights.TopicsMultiplier < 0 || c.Weights.HobbiesMultiplier < 0 {
		errs = append(errs, errors.New("weights: overlap multipliers must not be negative"))
	}
	if c.Weights.SharedMentorPenalty <= 0 {
		errs = append(errs, errors.New("weights.shared_mentor_penalty must be positive"))
	}

	// The gates only work if no pile-up of ordinary terms can outweigh
	// them. Slot penalties are the largest ordinary magnitude in play.
	if c.Weights.SeniorityGatePenalty <= 100*c.Weights.SharedMentorPenalty {
		errs = append(errs, errors.New("weights.seniority_gate_penalty must dominate shared_mentor_penalty by at least 100x"))
	}
	if c.Weights.ExperienceGatePenalty <= 100*c.Weights.SharedMentorPenalty {
		errs = append(errs, errors.New("weights.experience_gate_penalty must dominate shared_mentor_penalty by at least 100x"))
	}

	if c.Weights.TimeZoneGapThreshold < 0 {
		errs = append(errs, errors.New("weights.time_zone_gap_threshold must not be negative"))
	}
	if c.Weights.AvailabilityGapThreshold < 0 {
		errs = append(errs, errors.New("weights.availability_gap_threshold must not be negative"))
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
