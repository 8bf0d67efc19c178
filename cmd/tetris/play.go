package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tetris",
	Long: `Start a game. The board is shown empty until you press Enter.

Controls:
  Left/Right, A/D   - Move
  Down/S           - Soft drop (locks the piece when it cannot fall)
  Space            - Hard drop
  Up/X             - Rotate clockwise
  Z                - Rotate counter-clockwise
  Enter            - Start / dismiss the game over notice
  ?                - More keys
  Q/Esc/Ctrl+C     - Quit

Examples:
  tetris play
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for centering
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"interval_ms", cfg.Input.IntervalMS, "seed", cfg.Seed)

	runErr := tui.Run(cfg.GameConfig(), rt, logger)

	logger.Info("exiting")
	//nolint:errcheck // Best-effort close, logs are advisory
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
