package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the built-in configuration: a 10x18 board and a 50ms
// input interval.
func Default() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  tetris.DefaultWidth,
			Height: tetris.DefaultHeight,
		},
		Input: InputConfig{
			IntervalMS: int(tetris.DefaultInputInterval.Milliseconds()),
		},
	}
}
