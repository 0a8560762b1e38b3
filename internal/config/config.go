package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dm/pragati/internal/engine"
)

// Config is the on-disk configuration. Durations are Go duration strings
// ("13.5s", "50ms"); empty values fall back to the defaults.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Seed     int64          `yaml:"seed"` // 0 = seed from entropy
	Log      LogConfig      `yaml:"log"`
}

type AnalysisConfig struct {
	Duration     string `yaml:"duration"`      // e.g. "13.5s"
	TickInterval string `yaml:"tick_interval"` // e.g. "50ms"
	RevealDelay  string `yaml:"reveal_delay"`  // e.g. "700ms"
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // empty = logging disabled
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	t := engine.DefaultTiming()
	return &Config{
		Analysis: AnalysisConfig{
			Duration:     t.Duration.String(),
			TickInterval: t.TickInterval.String(),
			RevealDelay:  t.RevealDelay.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Timing parses the analysis durations.
func (c *Config) Timing() (engine.Timing, error) {
	def := engine.DefaultTiming()
	dur, err := parseDuration("analysis.duration", c.Analysis.Duration, def.Duration)
	if err != nil {
		return engine.Timing{}, err
	}
	tick, err := parseDuration("analysis.tick_interval", c.Analysis.TickInterval, def.TickInterval)
	if err != nil {
		return engine.Timing{}, err
	}
	reveal, err := parseDuration("analysis.reveal_delay", c.Analysis.RevealDelay, def.RevealDelay)
	if err != nil {
		return engine.Timing{}, err
	}
	return engine.Timing{Duration: dur, TickInterval: tick, RevealDelay: reveal}, nil
}

// Validate checks durations and log settings.
func (c *Config) Validate() error {
	t, err := c.Timing()
	if err != nil {
		return err
	}
	if t.TickInterval >= t.Duration {
		return fmt.Errorf("analysis.tick_interval (%s) must be shorter than analysis.duration (%s)", t.TickInterval, t.Duration)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log.format %q: must be json or console", c.Log.Format)
	}
	return nil
}

func parseDuration(field, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: %w", field, errNotPositive)
	}
	return d, nil
}

var errNotPositive = errors.New("must be positive")
