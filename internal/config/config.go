// Package config loads solver settings from defaults, an optional YAML
// file, KNAPSACK_* environment variables and bound command-line flags, in
// increasing order of precedence (viper's usual layering).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solver"
)

// ErrInvalidConfig wraps every validation failure; the specific cause is
// wrapped alongside it.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides (KNAPSACK_STRATEGY, ...).
const EnvPrefix = "KNAPSACK"

// Keys shared by the YAML file, the environment and the CLI flag bindings.
const (
	KeyStrategy    = "strategy"
	KeyHeuristic   = "heuristic"
	KeyBound       = "bound"
	KeyDPCellLimit = "dp_cell_limit"
	KeyTimeLimit   = "time_limit"
	KeyOutput      = "output"
)

// Config is the user-facing solver configuration. Enumerations are kept as
// their short names so files and flags stay readable.
type Config struct {
	Strategy    string        `mapstructure:"strategy"`
	Heuristic   string        `mapstructure:"heuristic"`
	Bound       string        `mapstructure:"bound"`
	DPCellLimit int64         `mapstructure:"dp_cell_limit"`
	TimeLimit   time.Duration `mapstructure:"time_limit"`
	Output      string        `mapstructure:"output"`
}

// Default returns the configuration matching solver.DefaultOptions with
// text output.
func Default() Config {
	return Config{
		Strategy:    solver.Auto.String(),
		Heuristic:   greedy.DescendingDensity.String(),
		Bound:       bound.FractionalBound.String(),
		DPCellLimit: dp.DefaultMaxCells,
		TimeLimit:   0,
		Output:      string(instance.FormatText),
	}
}

// Validate checks every name and limit.
func (c Config) Validate() error {
	if _, err := solver.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, KeyStrategy, c.Strategy, err)
	}
	if _, err := greedy.ParseOrder(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, KeyHeuristic, c.Heuristic, err)
	}
	if _, err := bound.ParseKind(c.Bound); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, KeyBound, c.Bound, err)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %s", ErrInvalidConfig, KeyTimeLimit, c.TimeLimit)
	}
	if _, err := instance.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyOutput, err)
	}

	return nil
}

// Options converts c into solver options. Call Validate first: names that
// do not parse leave the corresponding default in place.
func (c Config) Options() []solver.Option {
	opts := []solver.Option{
		solver.WithDPCellLimit(c.DPCellLimit),
		solver.WithTimeLimit(c.TimeLimit),
	}
	if s, err := solver.ParseStrategy(c.Strategy); err == nil {
		opts = append(opts, solver.WithStrategy(s))
	}
	if h, err := greedy.ParseOrder(c.Heuristic); err == nil {
		opts = append(opts, solver.WithHeuristic(h))
	}
	if k, err := bound.ParseKind(c.Bound); err == nil {
		opts = append(opts, solver.WithBound(k))
	}

	return opts
}

// NewViper returns a viper instance with defaults and environment binding
// configured. Callers may bind flags onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyHeuristic, d.Heuristic)
	v.SetDefault(KeyBound, d.Bound)
	v.SetDefault(KeyDPCellLimit, d.DPCellLimit)
	v.SetDefault(KeyTimeLimit, d.TimeLimit)
	v.SetDefault(KeyOutput, d.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (when non-empty) into v, decodes and validates the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
