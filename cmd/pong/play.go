package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a match against the computer in this terminal.

Controls:
  Mouse        - Paddle follows the pointer
  Left/A/H     - Nudge paddle left
  Right/D/L    - Nudge paddle right
  Enter/R      - Play again (after game over)
  ?            - Show all keys
  Q/Esc/Ctrl+C - Quit

Device classes:
  pointer - Precise input, faster rallies (speed cap 8)
  touch   - Coarse input, gentler rallies (speed cap 7.5)
  auto    - touch on narrow terminals, pointer otherwise

Examples:
  pong play
  pong play --device touch
  pong play --fps 30 --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closer, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		History: tui.NewHistory(0),
		Logger:  logger,
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
