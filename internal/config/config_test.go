package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty tag delimiter",
			mutate:  func(c *Config) { c.Survey.TagDelimiter = "" },
			wantErr: "tag_delimiter",
		},
		{
			name:    "unknown capacity source",
			mutate:  func(c *Config) { c.Survey.CapacitySource = "guess" },
			wantErr: "capacity_source",
		},
		{
			name:    "negative fallback hours",
			mutate:  func(c *Config) { c.Survey.FallbackHours = -1 },
			wantErr: "fallback_hours",
		},
		{
			name:    "negative overlap multiplier",
			mutate:  func(c *Config) { c.Weights.TopicsMultiplier = -3 },
			wantErr: "multipliers",
		},
		{
			name:    "zero shared mentor penalty",
			mutate:  func(c *Config) { c.Weights.SharedMentorPenalty = 0 },
			wantErr: "shared_mentor_penalty",
		},
		{
			name:    "seniority gate too weak",
			mutate:  func(c *Config) { c.Weights.SeniorityGatePenalty = 500 },
			wantErr: "seniority_gate_penalty",
		},
		{
			name:    "experience gate too weak",
			mutate:  func(c *Config) { c.Weights.ExperienceGatePenalty = 500 },
			wantErr: "experience_gate_penalty",
		},
		{
			name:    "negative time zone threshold",
			mutate:  func(c *Config) { c.Weights.TimeZoneGapThreshold = -1 },
			wantErr: "time_zone_gap_threshold",
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[survey]
tag_delimiter = ","
capacity_source = "hours"

[weights]
interests_multiplier = 10.0

[database]
path = "/tmp/test-roster.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Survey.TagDelimiter != "," {
		t.Errorf("tag delimiter = %q, want %q", cfg.Survey.TagDelimiter, ",")
	}
	if cfg.Survey.CapacitySource != CapacityFromHours {
		t.Errorf("capacity source = %q, want %q", cfg.Survey.CapacitySource, CapacityFromHours)
	}
	if cfg.Weights.InterestsMultiplier != 10.0 {
		t.Errorf("interests multiplier = %v, want 10", cfg.Weights.InterestsMultiplier)
	}

	// fields absent from the file keep their defaults
	if cfg.Weights.TopicsMultiplier != Default().Weights.TopicsMultiplier {
		t.Errorf("topics multiplier = %v, want default", cfg.Weights.TopicsMultiplier)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[weights]
shared_mentor_penalty = -1.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid config, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Errorf("error %q should point at 'config init'", err.Error())
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Survey.TagDelimiter != Default().Survey.TagDelimiter {
		t.Errorf("expected defaults when the config file is absent")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"~/.config/mentormatch/config.toml", filepath.Join(home, ".config/mentormatch/config.toml")},
		{"/absolute/path.toml", "/absolute/path.toml"},
		{"relative/path.toml", "relative/path.toml"},
	}

	for _, tt := range tests {
		got, err := expandPath(tt.path)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.path, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}
