package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/loop"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagSeed      int64
	flagRealtime  bool
	flagSimWidth  int
	flagPilotStep float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match and print the final state",
	Long: `Run a match without a terminal UI and print the final state as YAML.

The autopilot chases the ball with a limited pointer speed and a random
aim per rally. Without it the paddle never moves, so the computer paddle
stays put and the ball bounces straight up and down.

The frame loop is pumped as fast as possible unless --realtime is set,
in which case frames run at --fps on a wall-clock ticker.

Examples:
  pong sim
  pong sim --frames 10000 --seed 7
  pong sim --autopilot=false --frames 500
  pong sim --realtime --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to run")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot move the player paddle")
	simCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Autopilot RNG seed")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run frames at --fps instead of as fast as possible")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Terminal width assumed for device auto-detection")
	simCmd.Flags().Float64Var(&flagPilotStep, "pilot-step", 12, "Autopilot pointer speed in arena units per frame")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr, "pong-sim")
	if err != nil {
		return err
	}
	defer closer.Close()

	runtime := core.DefaultConfig()
	runtime.ScreenW = flagSimWidth
	runtime.TickRate = flagFPS
	runtime.Device = cfg.Device.ResolveDevice(flagSimWidth)

	game := pong.New(cfg)
	game.Reset(runtime)

	var pilot *pong.Autopilot
	if flagAutopilot {
		pilot = pong.NewAutopilot(flagSeed, flagPilotStep)
	}

	frames := 0
	tick := func() bool {
		if pilot != nil {
			game.ApplyInput(pilot.Next(game.Sim()))
		}
		frames++
		before := game.State()
		running := game.Tick()
		if after := game.State(); after != before {
			logger.Debug("point scored", "frame", frames, "player", after.PlayerScore, "computer", after.OpponentScore)
		}
		return running && frames < flagFrames
	}

	logger.Info("simulation started",
		"device", runtime.Device.String(),
		"frames", flagFrames,
		"autopilot", flagAutopilot,
		"realtime", flagRealtime,
	)

	if flagRealtime {
		sched := loop.NewTickerScheduler(flagFPS)
		driver := loop.NewDriver(sched, tick, nil)
		driver.Start()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := sched.Run(ctx); err != nil {
			logger.Warn("simulation interrupted", "error", err)
		}
	} else {
		sched := &loop.ManualScheduler{}
		driver := loop.NewDriver(sched, tick, nil)
		driver.Start()
		sched.Run(0)
	}

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"frames", frames,
		"phase", snap.Phase,
		"player", snap.PlayerScore,
		"computer", snap.OpponentScore,
	)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return enc.Close()
}
