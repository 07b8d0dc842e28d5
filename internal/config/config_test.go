package config

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Storage.Backend", cfg.Storage.Backend, "file"},
		{"Storage.Dir", cfg.Storage.Dir, DefaultDataDir()},
		{"CatalogPath", cfg.CatalogPath, ""},
		{"Length", cfg.Length, 3},
		{"TelemetryPath", cfg.TelemetryPath, ""},
		{"LogLevel", cfg.LogLevel, "warn"},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
	if len(cfg.Symbols) != 0 {
		t.Errorf("Symbols = %v, want empty", cfg.Symbols)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "storage.backend",
			envKey: "JUGGLELOG_STORAGE_BACKEND",
			envVal: "sqlite",
			field:  func(c Config) any { return c.Storage.Backend },
			want:   "sqlite",
		},
		{
			name:   "storage.dir",
			envKey: "JUGGLELOG_STORAGE_DIR",
			envVal: "/tmp/juggle",
			field:  func(c Config) any { return c.Storage.Dir },
			want:   "/tmp/juggle",
		},
		{
			name:   "length",
			envKey: "JUGGLELOG_LENGTH",
			envVal: "5",
			field:  func(c Config) any { return c.Length },
			want:   5,
		},
		{
			name:   "log_level",
			envKey: "JUGGLELOG_LOG_LEVEL",
			envVal: "debug",
			field:  func(c Config) any { return c.LogLevel },
			want:   "debug",
		},
		{
			name:   "verbose",
			envKey: "JUGGLELOG_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("JUGGLELOG")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_SymbolsFromConfig(t *testing.T) {
	resetViper()
	viper.Set("symbols", []string{"S", "Od"})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"S", "Od"}) {
		t.Errorf("Symbols = %v", cfg.Symbols)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"unknown backend", "storage.backend", "floppy"},
		{"length too small", "length", 0},
		{"length too large", "length", 11},
		{"bad log level", "log_level", "chatty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)
			if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
