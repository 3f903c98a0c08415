// Package config loads client configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. PREPGENIUS_SERVER_BASE_URL.
const EnvPrefix = "PREPGENIUS_"

const (
	// DefaultBaseURL is where the study backend listens by default.
	DefaultBaseURL = "http://127.0.0.1:5000"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `koanf:"server" validate:"required"`
	Store  StoreConfig  `koanf:"store"  validate:"required"`
	Log    LogConfig    `koanf:"log"    validate:"required"`
	Export ExportConfig `koanf:"export" validate:"required"`
}

// ServerConfig locates the backend API.
type ServerConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// StoreConfig locates the local SQLite database.
type StoreConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=text json logfmt"`
	File   LogFileConfig `koanf:"file"   validate:"required"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Path       string `koanf:"path"        validate:"required"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// ExportConfig controls where downloaded output is written.
type ExportConfig struct {
	Dir string `koanf:"dir" validate:"required"`
}

// Overrides are values set from CLI flags. Empty fields are ignored.
type Overrides struct {
	BaseURL string
	DBPath  string
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"server.base_url": DefaultBaseURL,

		"store.path": filepath.Join(dataHome(), "prepgenius", "prepgenius.db"),

		"log.level":            "info",
		"log.format":           "text",
		"log.file.path":        filepath.Join(stateHome(), "prepgenius", "prepgenius.log"),
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"export.dir": ".",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. CLI flag overrides
//  2. Environment variables (PREPGENIUS_ prefix)
//  3. Config file (path, or the XDG default when path is empty)
//  4. Default values
func Load(path string, o Overrides) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultPath()); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKey(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	flags := map[string]any{}
	if o.BaseURL != "" {
		flags["server.base_url"] = o.BaseURL
	}
	if o.DBPath != "" {
		flags["store.path"] = o.DBPath
	}
	if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// sections lists top-level keys whose names contain no underscore, so the
// first underscore after them separates section from field.
var sections = []string{"server", "store", "log_file", "log", "export"}

// envKey maps SERVER_BASE_URL to server.base_url and LOG_FILE_MAX_SIZE to
// log.file.max_size. Field names keep their underscores.
func envKey(s string) string {
	s = strings.ToLower(s)
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(s, sec+"_"); ok {
			return strings.ReplaceAll(sec, "_", ".") + "." + rest
		}
	}
	return s
}

// DefaultPath returns $XDG_CONFIG_HOME/prepgenius/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "prepgenius", "config.yaml")
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

func dataHome() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

func stateHome() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state")
}
