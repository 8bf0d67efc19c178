// Package config provides YAML-based configuration loading for the tetris
// game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board BoardConfig `yaml:"board"`
	Input InputConfig `yaml:"input"`
	Seed  int64       `yaml:"seed"` // 0 = seed from the clock
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Minimum spacing of accepted key presses; 0 disables throttling
}

// Interval returns the input interval as a duration.
func (c InputConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < tetris.MinDimension {
		return fmt.Errorf("%w: board.width %d is below %d", ErrInvalidConfig, c.Board.Width, tetris.MinDimension)
	}
	if c.Board.Height < tetris.MinDimension {
		return fmt.Errorf("%w: board.height %d is below %d", ErrInvalidConfig, c.Board.Height, tetris.MinDimension)
	}
	if c.Input.IntervalMS < 0 {
		return fmt.Errorf("%w: input.interval_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

// GameConfig converts the file configuration into the engine's settings.
func (c TetrisConfig) GameConfig() tetris.Config {
	interval := c.Input.Interval()
	if interval == 0 {
		// The engine treats zero as "use the default"; negative turns
		// throttling off.
		interval = -1
	}
	return tetris.Config{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		InputInterval: interval,
		Seed:          c.Seed,
	}
}
