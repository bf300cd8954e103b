// Package config provides application configuration for the almanac CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. ALMANAC_LOG_LEVEL.
const Prefix = "ALMANAC"

// Defaults; they must match the struct tag defaults below.
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = LogFormatPretty
	DefaultWorkers   = 1
	DefaultInputRoot = "."
	DefaultFrom      = "seed"
	DefaultTo        = "location"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

var (
	// ErrBadWorkers indicates WORKERS < 1.
	ErrBadWorkers = errors.New("config: workers must be at least 1")
	// ErrBadLogFormat indicates an unsupported LOG_FORMAT.
	ErrBadLogFormat = errors.New("config: log format must be pretty or json")
)

// Config holds environment-based configuration.
type Config struct {
	// LogLevel is the log verbosity level.
	// Env: ALMANAC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: ALMANAC_LOG_FORMAT (default: pretty)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"pretty"`

	// Workers is the number of seed ranges remapped concurrently.
	// Env: ALMANAC_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	// Merge normalises interval sets between stages.
	// Env: ALMANAC_MERGE (default: false)
	Merge bool `envconfig:"MERGE" default:"false"`

	// InputRoot is the directory holding crates/aoc<year>/input.
	// Env: ALMANAC_INPUT_ROOT (default: .)
	InputRoot string `envconfig:"INPUT_ROOT" default:"."`

	// From is the category answers start from.
	// Env: ALMANAC_FROM (default: seed)
	From string `envconfig:"FROM" default:"seed"`

	// To is the category answers are reported in.
	// Env: ALMANAC_TO (default: location)
	To string `envconfig:"TO" default:"location"`
}

// LoadFromEnv reads Config from ALMANAC_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads ".env" in the current directory.
// A missing file is not an error. Existing variables are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load loads the optional .env file, then the environment, then validates.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	cfg.LogFormat = LogFormat(strings.ToLower(string(cfg.LogFormat)))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the CLI cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
	return nil
}
