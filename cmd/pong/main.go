// pong is a vertical Pong game for the terminal: your paddle at the bottom,
// the computer's at the top, first to seven wins.
//
// Usage:
//
//	pong                 - Play in this terminal (same as "pong play")
//	pong play            - Play in this terminal
//	pong serve           - Host games over SSH, one per connection
//	pong sim             - Run a headless match and print the final state
//	pong config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--device <class>        - auto, pointer or touch (default: from config)
//	--config <path>         - Custom config YAML
//	--winning-score <n>     - Override the winning score
//	--log-file <path>       - Write logs to a file
//	--log-level <level>     - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagFPS          int
	flagDevice       string
	flagConfig       string
	flagWinningScore int
	flagLogFile      string
	flagLogLevel     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - Beat the computer paddle in your terminal",
	Long: `Pong is a vertical Pong game played in the terminal.

Move your paddle with the mouse or the arrow keys. The computer paddle
chases the ball once you start moving. First side to the winning score
takes the match, then "Play Again" starts a new one.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless match
  config   - Print the effective configuration

Examples:
  pong
  pong play --device touch
  pong serve --ssh :2222
  pong sim --frames 5000 --seed 7
  pong config > ~/.tui-pong/configs/pong.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDevice, "device", "", "Input device class: auto, pointer, touch")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWinningScore, "winning-score", 0, "Points needed to win (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}

	if flagDevice != "" {
		if _, _, err := config.ParseDeviceClass(flagDevice); err != nil {
			return config.PongConfig{}, err
		}
		cfg.Device.Class = flagDevice
	}
	if flagWinningScore > 0 {
		cfg.Gameplay.WinningScore = flagWinningScore
	}

	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. fallback receives the logs
// unless --log-file is set. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
