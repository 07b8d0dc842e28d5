package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/jugglelog/internal/storage"
)

// Length bounds accepted for generated patterns.
const (
	MinLength = 1
	MaxLength = 10
)

// ErrInvalidConfig is wrapped by every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid config")

// StorageConfig selects where progress is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// Config holds all runtime configuration for a jugglelog session.
// Values are populated from .jugglelog.yaml, JUGGLELOG_* env vars, and CLI flags.
type Config struct {
	Storage       StorageConfig `mapstructure:"storage"`
	CatalogPath   string        `mapstructure:"catalog_path"`
	Symbols       []string      `mapstructure:"symbols"`
	Length        int           `mapstructure:"length"`
	TelemetryPath string        `mapstructure:"telemetry_path"`
	LogLevel      string        `mapstructure:"log_level"`
	Verbose       bool          `mapstructure:"verbose"`
}

// DefaultDataDir is where progress lives when storage.dir is not set.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jugglelog"
	}
	return filepath.Join(home, ".jugglelog")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("storage.backend", storage.BackendFile)
	viper.SetDefault("storage.dir", DefaultDataDir())
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("symbols", []string{})
	viper.SetDefault("length", 3)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if !slices.Contains(storage.Backends(), c.Storage.Backend) {
		return fmt.Errorf("%w: storage.backend %q (want one of %v)", ErrInvalidConfig, c.Storage.Backend, storage.Backends())
	}
	if c.Length < MinLength || c.Length > MaxLength {
		return fmt.Errorf("%w: length %d outside [%d, %d]", ErrInvalidConfig, c.Length, MinLength, MaxLength)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
