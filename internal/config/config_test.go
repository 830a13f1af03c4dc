package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Bind == "" {
		t.Error("default bind is empty")
	}
	if cfg.Convert.Profile != "s2tw" {
		t.Errorf("default profile = %q, want s2tw", cfg.Convert.Profile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
bind = "0.0.0.0:9000"
max_upload_mib = 64

[convert]
workers = 4
profile = "s2twp"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Errorf("bind = %q", cfg.Server.Bind)
	}
	if cfg.Convert.Workers != 4 {
		t.Errorf("workers = %d", cfg.Convert.Workers)
	}
	if got := cfg.MaxUploadBytes(); got != 64<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", got, 64<<20)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty bind", func(c *Config) { c.Server.Bind = " " }},
		{"zero upload cap", func(c *Config) { c.Server.MaxUploadMiB = 0 }},
		{"negative workers", func(c *Config) { c.Convert.Workers = -1 }},
		{"empty profile", func(c *Config) { c.Convert.Profile = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSampleMatchesDefaults(t *testing.T) {
	sample := Sample()
	if !strings.Contains(sample, "[server]") || !strings.Contains(sample, "profile") {
		t.Error("sample config is missing expected sections")
	}
	var cfg Config
	if err := toml.Unmarshal([]byte(sample), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config does not validate: %v", err)
	}
}
