package grid

import (
	"fmt"
	"log/slog"
)

const (
	DefaultRows     = 5
	DefaultCols     = 5
	DefaultMaxSteps = 250

	TargetReward  = 20
	DeathReward   = -10
	DefaultReward = -1

	// declared bounds of the reward range
	MinReward = -10
	MaxReward = 100
)

// Config of a GridEnvironment. The zero value is not usable, start from DefaultConfig.
type Config struct {
	Rows     int
	Cols     int
	Target   Position
	Deaths   []Position
	MaxSteps int
	// Seed of the random source used by Reset, nil seeds from the clock
	Seed *int64
	// Permissive treats actions outside the action space as no-op moves
	// instead of failing with ErrInvalidAction
	Permissive bool
}

func DefaultConfig() Config {
	return Config{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Target:   Position{Row: 4, Col: 4},
		Deaths:   []Position{{Row: 3, Col: 1}, {Row: 4, Col: 2}},
		MaxSteps: DefaultMaxSteps,
	}
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid must be non-empty, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: max steps must be positive, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if !inside(c.Target, c.Rows, c.Cols) {
		return fmt.Errorf("%w: target %s outside the grid", ErrInvalidConfig, c.Target)
	}
	for _, d := range c.Deaths {
		if !inside(d, c.Rows, c.Cols) {
			return fmt.Errorf("%w: death cell %s outside the grid", ErrInvalidConfig, d)
		}
		if d.Eq(c.Target) {
			return fmt.Errorf("%w: target %s is also a death cell", ErrInvalidConfig, d)
		}
	}
	if c.Rows*c.Cols < 2 {
		// Reset would never find a non-target cell
		return fmt.Errorf("%w: grid needs a cell other than the target", ErrInvalidConfig)
	}
	return nil
}

// Option customizes a GridEnvironment at construction
type Option func(*GridEnvironment)

// WithConfig replaces the configuration. A seed or permissive mode set by an
// earlier option survives unless c sets its own.
func WithConfig(c Config) Option {
	return func(g *GridEnvironment) {
		if c.Seed == nil {
			c.Seed = g.config.Seed
		}
		c.Permissive = c.Permissive || g.config.Permissive
		g.config = c
	}
}

func WithSeed(seed int64) Option {
	return func(g *GridEnvironment) {
		g.config.Seed = &seed
	}
}

func WithPermissiveActions() Option {
	return func(g *GridEnvironment) {
		g.config.Permissive = true
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *GridEnvironment) {
		g.logger = logger
	}
}
