// Package config loads analyzer settings from a YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sadf/explore"
	"github.com/katalvlaran/sadf/maxplus"
	"github.com/katalvlaran/sadf/throughput"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the analyzer settings. YAML keys are snake_case.
type Config struct {
	Strategy      string    `yaml:"strategy"`
	Epsilon       float64   `yaml:"epsilon"`
	MaxIterations int       `yaml:"max_iterations"`
	MaxStates     int       `yaml:"max_states"`
	Pruning       bool      `yaml:"pruning"`
	Parallelism   int       `yaml:"parallelism"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig selects the slog level (debug, info, warn, error) and handler
// format (text, json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Strategy:      throughput.StateSpace.String(),
		Epsilon:       maxplus.DefaultEpsilon,
		MaxIterations: explore.DefaultMaxIterations,
		MaxStates:     explore.DefaultMaxStates,
		Pruning:       true,
		Parallelism:   4,
		Log:           LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default, applies SADF_* environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg.Strategy = getEnv("SADF_STRATEGY", cfg.Strategy)
	cfg.Log.Level = getEnv("SADF_LOG_LEVEL", cfg.Log.Level)
	cfg.MaxStates = getEnvInt("SADF_MAX_STATES", cfg.MaxStates)
	cfg.Parallelism = getEnvInt("SADF_PARALLELISM", cfg.Parallelism)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := throughput.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(c.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalid, c.Epsilon)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be at least 1, got %d", ErrInvalid, c.MaxIterations)
	}
	if c.MaxStates < 1 {
		return fmt.Errorf("%w: max_states must be at least 1, got %d", ErrInvalid, c.MaxStates)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalid, c.Parallelism)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// StrategyValue returns the configured strategy. Load has validated it.
func (c *Config) StrategyValue() throughput.Strategy {
	s, _ := throughput.ParseStrategy(c.Strategy)
	return s
}

// Options converts the settings into analysis options.
func (c *Config) Options(logger *slog.Logger) []throughput.Option {
	return []throughput.Option{
		throughput.WithEpsilon(c.Epsilon),
		throughput.WithMaxIterations(c.MaxIterations),
		throughput.WithMaxStates(c.MaxStates),
		throughput.WithPruning(c.Pruning),
		throughput.WithParallelism(c.Parallelism),
		throughput.WithLogger(logger),
	}
}

// Logger builds a text or JSON slog logger writing to w at the configured
// level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
