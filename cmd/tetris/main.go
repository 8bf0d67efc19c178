// tetris is a terminal tetris game.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play
//	tetris shapes [kind]     - Print the tetromino shape table
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Read configuration from a YAML file
//	--width <n>       - Board width in cells (default: 10)
//	--height <n>      - Board height in cells (default: 18)
//	--seed <value>    - Set RNG seed for a reproducible piece sequence
//	--interval <ms>   - Minimum spacing of accepted key presses (default: 50)
//	--log-file <path> - Write logs to a file
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagSeed     int64
	flagInterval int
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A keyboard-driven tetris for the terminal. Pieces only move when you
press a key: there is no gravity timer.

Available commands:
  play     - Play (the default)
  shapes   - Print the tetromino shape table
  config   - Print the effective configuration

Examples:
  tetris
  tetris --width 12 --height 22
  tetris --seed 42 --log-file /tmp/tetris.log --debug
  tetris shapes T`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagInterval, "interval", 0, "Minimum milliseconds between accepted key presses (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig loads the configuration and applies any flags the user
// set explicitly.
func effectiveConfig(cmd *cobra.Command) (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("interval") {
		cfg.Input.IntervalMS = flagInterval
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// newLogger builds the application logger. The terminal belongs to the
// game, so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
