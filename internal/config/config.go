package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the HTTP listener configuration.
type Server struct {
	Bind         string `toml:"bind"`
	MaxUploadMiB int    `toml:"max_upload_mib"`
}

// Convert contains the transcoding engine configuration.
type Convert struct {
	Workers int    `toml:"workers"`
	Profile string `toml:"profile"`
}

// Logging contains log output configuration.
type Logging struct {
	Level string `toml:"level"`
}

// Config is the full epubcc configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Convert Convert `toml:"convert"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: Server{
			Bind:         "127.0.0.1:8732",
			MaxUploadMiB: 256,
		},
		Convert: Convert{
			Workers: 0, // 0 means one per CPU
			Profile: "s2tw",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layered over defaults. A missing file
// is not an error when path is empty: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Bind) == "" {
		return errors.New("server.bind must not be empty")
	}
	if c.Server.MaxUploadMiB < 1 {
		return fmt.Errorf("server.max_upload_mib must be positive, got %d", c.Server.MaxUploadMiB)
	}
	if c.Convert.Workers < 0 {
		return fmt.Errorf("convert.workers must not be negative, got %d", c.Convert.Workers)
	}
	if strings.TrimSpace(c.Convert.Profile) == "" {
		return errors.New("convert.profile must not be empty")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

// MaxUploadBytes returns the request-body cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMiB) << 20
}

// Sample returns the annotated sample configuration file.
func Sample() string {
	return sampleConfig
}
