// Package config loads lifeboard settings from defaults, an optional YAML
// file and command-line flags, in that order.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	// MinDelay and MaxDelay bound the pause between generations.
	MinDelay = 25 * time.Millisecond
	MaxDelay = 1000 * time.Millisecond
)

// Config holds the settings shared by the window and terminal front ends.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Delay is the pause between generations while running. It always needs
	// a unit ("500ms"); YAML rejects a bare number.
	Delay time.Duration `yaml:"delay"`
	// AliveProbability is the per-cell chance used by Random.
	AliveProbability float64 `yaml:"alive_probability"`
	// Seed fixes the random source; 0 means a fresh source every run.
	Seed int64 `yaml:"seed"`
	// RandomStart fills the initial board randomly instead of leaving it empty.
	RandomStart bool `yaml:"random_start"`

	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Rows:             50,
		Cols:             50,
		Delay:            500 * time.Millisecond,
		AliveProbability: 0.2,
		Scale:            14,
		TPS:              60,
		LogLevel:         "info",
	}
}

// LoadFile reads a YAML file on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}

	return cfg, nil
}

// WithOverrides applies key=value pairs named like the YAML keys on top of c.
// Unknown keys and unparseable values are errors; ranges are left to Validate.
func (c Config) WithOverrides(m map[string]string) (Config, error) {
	for key, v := range m {
		var err error
		switch key {
		case "rows":
			c.Rows, err = strconv.Atoi(v)
		case "cols":
			c.Cols, err = strconv.Atoi(v)
		case "delay":
			c.Delay, err = time.ParseDuration(v)
		case "alive_probability":
			c.AliveProbability, err = strconv.ParseFloat(v, 64)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "random_start":
			c.RandomStart, err = strconv.ParseBool(v)
		case "scale":
			c.Scale, err = strconv.Atoi(v)
		case "tps":
			c.TPS, err = strconv.Atoi(v)
		case "log_level":
			c.LogLevel = v
		default:
			return c, errors.Errorf("unknown config key: %s", key)
		}
		if err != nil {
			return c, errors.Wrapf(err, "[WithOverrides] failed to parse value for key: %+v", key)
		}
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations (25ms-1s)")
	fs.Float64Var(&c.AliveProbability, "alive-probability", c.AliveProbability, "chance a cell starts alive on Random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 for a fresh source)")
	fs.BoolVar(&c.RandomStart, "random", c.RandomStart, "start with a random board")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the window")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window frames per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug or trace")
}

// Resolve layers the YAML file at path (when set) under the flags that were
// set explicitly in fs. Without a path the flag-bound config is returned.
func Resolve(flagged Config, path string, fs *pflag.FlagSet) (Config, error) {
	if path == "" {
		return flagged, nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}

	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	cfg.Bind(overrides)
	var setErr error
	fs.Visit(func(f *pflag.Flag) {
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		if err := overrides.Set(f.Name, f.Value.String()); err != nil {
			setErr = errors.Wrapf(err, "[Resolve] failed to apply flag: %+v", f.Name)
		}
	})
	return cfg, setErr
}

// Validate checks that the configuration can build a board.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("board size must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Delay < time.Millisecond {
		return errors.Errorf("delay %v is below 1ms; write it with a unit, e.g. 500ms", c.Delay)
	}
	if c.AliveProbability < 0 || c.AliveProbability > 1 {
		return errors.Errorf("alive_probability must be between 0 and 1, got %f", c.AliveProbability)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.LogLevel] {
		return errors.Errorf("invalid log level: %s (valid: info, debug, trace)", c.LogLevel)
	}
	return nil
}

// ClampDelay limits d to [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}
	return d
}
