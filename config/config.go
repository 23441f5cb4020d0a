// Package config holds the settings shared by the frontends. Defaults are overridden by
// TETRA_* environment variables, which are in turn overridden by command-line flags.
package config

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/deitrix/tetra/input"
)

// Environment variables read by Load.
const (
	EnvSeed     = "TETRA_SEED"
	EnvCellSize = "TETRA_CELL_SIZE"
	EnvLog      = "TETRA_LOG"
	EnvDebug    = "TETRA_DEBUG"
)

type Config struct {
	// Seed seeds the piece generator. Zero picks a random seed.
	Seed uint64
	// CellSize is the size of a board cell in pixels.
	CellSize int
	// TPS is the number of engine updates per second.
	TPS int
	// Gesture holds the touch classification thresholds.
	Gesture input.Gesture
	// Bindings maps key names to actions.
	Bindings input.Bindings
	// LogPath is the file log output is appended to. Empty keeps the frontend default.
	LogPath string
	// Debug shows the debug overlay and logs engine events.
	Debug bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CellSize: 30,
		TPS:      60,
		Gesture:  input.DefaultGesture(),
		Bindings: input.DefaultBindings(),
	}
}

// Load builds a Config from the defaults, the environment (looked up with getenv) and args,
// which should not include the program name.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the piece generator (0 = random)")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "updates per second")
	fs.Float64Var(&cfg.Gesture.Swipe, "swipe", cfg.Gesture.Swipe, "minimum swipe distance in pixels")
	fs.Float64Var(&cfg.Gesture.Tap, "tap", cfg.Gesture.Tap, "maximum tap distance in pixels")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "append log output to this file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show debug overlay and log engine events")
	fs.Func("bind", "bind a key to an action, as key=action (repeatable)", cfg.Bindings.Set)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvCellSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvCellSize, err)
		}
		c.CellSize = size
	}
	if v := getenv(EnvLog); v != "" {
		c.LogPath = v
	}
	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate rejects settings the frontends cannot work with.
func (c Config) Validate() error {
	if c.CellSize < 4 {
		return fmt.Errorf("cell size %d: must be at least 4", c.CellSize)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.Gesture.Tap < 0 || c.Gesture.Swipe < c.Gesture.Tap {
		return fmt.Errorf("gesture thresholds tap=%v swipe=%v: need 0 <= tap <= swipe", c.Gesture.Tap, c.Gesture.Swipe)
	}
	return nil
}
