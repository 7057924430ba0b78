// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for starcrossed configuration.
	DefaultConfigDir = ".starcrossed"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSavesFile is the default save slots file name.
	DefaultSavesFile = "saves.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "starcrossed.db"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after init).
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Tuning  TuningConfig  `yaml:"tuning"`
	Roster  RosterConfig  `yaml:"roster,omitempty"`
}

// StorageConfig selects and configures the game store.
type StorageConfig struct {
	Backend string       `yaml:"backend"`
	SQLite  SQLiteConfig `yaml:"sqlite,omitempty"`
	Redis   RedisConfig  `yaml:"redis,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite game store.
type SQLiteConfig struct {
	// Path is the database file. Relative paths resolve against the config directory.
	Path string `yaml:"path,omitempty"`
}

// RedisConfig holds configuration for the Redis game store.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	Output   string `yaml:"output,omitempty"`
}

// TuningConfig holds the game balance values.
type TuningConfig struct {
	Events   EventDeltas    `yaml:"events"`
	Conflict ConflictTuning `yaml:"conflict"`
}

// EventDeltas holds the default affection change of each interaction kind.
type EventDeltas struct {
	Dialogue int `yaml:"dialogue"`
	Gift     int `yaml:"gift"`
	Date     int `yaml:"date"`
	Activity int `yaml:"activity"`
}

// ConflictTuning holds the conflict trigger coefficients.
type ConflictTuning struct {
	BaseChance      float64 `yaml:"base_chance"`
	AffectionFactor float64 `yaml:"affection_factor"`
	MinChance       float64 `yaml:"min_chance"`
}

// RosterConfig points at an optional companion content file.
type RosterConfig struct {
	// File is a YAML or JSON roster. Empty means the built-in companions.
	File string `yaml:"file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			SQLite:  SQLiteConfig{Path: DefaultDatabaseFile},
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "starcrossed",
			},
		},
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
			Output:   "stderr",
		},
		Tuning: TuningConfig{
			Events: EventDeltas{Dialogue: 3, Gift: 5, Date: 8, Activity: 4},
			Conflict: ConflictTuning{
				BaseChance:      30,
				AffectionFactor: 0.2,
				MinChance:       5,
			},
		},
	}
}

// Load loads configuration from the .starcrossed directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'starcrossed init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("STARCROSSED_REDIS_ADDR"); addr != "" {
		c.Storage.Redis.Addr = addr
	}
	if pw := os.Getenv("STARCROSSED_REDIS_PASSWORD"); pw != "" {
		c.Storage.Redis.Password = pw
	}
	if db := os.Getenv("STARCROSSED_REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Storage.Redis.DB = n
		}
	}
	if level := os.Getenv("STARCROSSED_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required")
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (valid: %s, %s)", c.Storage.Backend, BackendSQLite, BackendRedis)
	}

	if c.Tuning.Conflict.MinChance < 0 || c.Tuning.Conflict.BaseChance > 100 {
		return fmt.Errorf("conflict chances must lie within 0-100")
	}
	return nil
}

// SQLitePath returns the absolute database path for the config in basePath.
func (c *Config) SQLitePath(basePath string) string {
	if filepath.IsAbs(c.Storage.SQLite.Path) {
		return c.Storage.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, c.Storage.SQLite.Path)
}

// RosterPath returns the roster file path, or "" for the built-in companions.
func (c *Config) RosterPath(basePath string) string {
	if c.Roster.File == "" || filepath.IsAbs(c.Roster.File) {
		return c.Roster.File
	}
	return filepath.Join(basePath, DefaultConfigDir, c.Roster.File)
}

// ConfigDir returns the path to the .starcrossed config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SavesFilePath returns the path to the save slots file.
func SavesFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultSavesFile)
}

// SanitizeSlotName converts a save slot name to a stable key.
func SanitizeSlotName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}
