// Package pong implements a vertical Pong match against a computer paddle.
// The human paddle sits at the bottom, the computer paddle at the top, and
// the first side to reach the winning score takes the match.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game owns the simulation state and runs one tick at a time.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	tuning  Tuning
	state   State
	life    Lifecycle
	stats   Stats
}

// New creates a game that has not started yet.
func New(cfg config.PongConfig) *Game {
	return &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		tuning:  NewTuning(cfg, core.DevicePointer),
		state:   NewState(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// SetPresenter attaches the presentation layer for lifecycle notifications.
func (g *Game) SetPresenter(p Presenter) {
	g.life.SetPresenter(p)
}

// Reset applies a new runtime configuration and starts a match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.Start()
}

// Start begins a match, or restarts after a game over. The device class
// is sampled here and stays fixed for the whole match.
func (g *Game) Start() {
	g.tuning = NewTuning(g.cfg, g.runtime.Device)
	g.stats = Stats{}
	g.life.Start(&g.state, g.tuning)
}

// Step applies input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ApplyInput(in)
	g.Tick()
	return core.StepResult{State: g.State()}
}

// ApplyInput updates the player paddle. Input is accepted in any phase;
// the paddle keeps its position across matches.
func (g *Game) ApplyInput(in core.InputFrame) {
	g.state.ApplyInput(in, g.cfg.Gameplay.KeyStep)
}

// MovePaddleTo places the player paddle under an absolute pointer position.
func (g *Game) MovePaddleTo(pointerX float64) {
	g.state.MovePaddleTo(pointerX)
}

// Tick runs kinematics, collision resolution, opponent movement and the
// game-over check, in that order. It reports whether the match is still
// running, i.e. whether another frame should be scheduled.
func (g *Game) Tick() bool {
	if g.life.Phase() != PhaseRunning {
		return false
	}

	MoveBall(&g.state)
	contact := Resolve(&g.state, g.tuning)
	g.stats.record(contact, g.state.Ball.SpeedY)
	TrackBall(&g.state)

	return g.life.Check(&g.state, g.stats)
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.life.Phase()
}

// Outcome returns the result of the last finished match.
func (g *Game) Outcome() (Outcome, bool) {
	return g.life.Outcome()
}

// Stats returns the statistics of the current match.
func (g *Game) Stats() Stats {
	return g.stats
}

// Tuning returns the speed tier selected for the current match.
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Sim exposes the raw simulation state for read-only use by adapters.
func (g *Game) Sim() State {
	return g.state
}

// State returns the summary used by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		PlayerScore:   g.state.Match.PlayerScore,
		OpponentScore: g.state.Match.OpponentScore,
		GameOver:      g.state.Match.GameOver,
	}
}
