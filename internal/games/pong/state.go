package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one of the two paddles.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

// String returns the name shown on the results panel.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "You"
	case SideOpponent:
		return "Computer"
	default:
		return "Nobody"
	}
}

// Arena is the play field in arena units.
type Arena struct {
	Width  float64
	Height float64
}

// Paddle is a horizontal paddle. Only X changes during play.
type Paddle struct {
	X      float64
	Width  float64
	Height float64
}

// Span returns the horizontal extent used for hit tests.
func (p Paddle) Span() core.Span {
	return core.NewSpan(p.X, p.Width)
}

// Ball holds position and velocity. SpeedY uses an inverted sign:
// negative values move the ball down toward the player.
type Ball struct {
	X, Y    float64
	Radius  float64
	SpeedX  float64
	SpeedY  float64
	Contact bool // Touched the player paddle since the last serve
}

// Match holds scores and lifecycle flags.
type Match struct {
	PlayerScore   int
	OpponentScore int
	WinningScore  int
	GameOver      bool
	NewGame       bool // True only before the very first start
	PlayerMoved   bool // Any input received; gates opponent and horizontal motion
	ComputerSpeed float64
}

// State is the complete simulation state of one game.
type State struct {
	Arena      Arena
	Player     Paddle // Bottom
	Opponent   Paddle // Top
	PaddleDiff float64
	Ball       Ball
	Match      Match
}

// NewState builds the pre-start state from configuration.
// The match is flagged as over and new until the first Start.
func NewState(cfg config.PongConfig) State {
	paddle := Paddle{
		X:      cfg.Paddles.StartX,
		Width:  cfg.Paddles.Width,
		Height: cfg.Paddles.Height,
	}
	base := cfg.Speeds.Pointer.BaseSpeed
	return State{
		Arena:      Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		Player:     paddle,
		Opponent:   paddle,
		PaddleDiff: cfg.Paddles.Diff,
		Ball: Ball{
			X:      cfg.Arena.Width / 2,
			Y:      cfg.Arena.Height / 2,
			Radius: cfg.Ball.Radius,
			SpeedX: -base,
			SpeedY: -base,
		},
		Match: Match{
			WinningScore:  cfg.Gameplay.WinningScore,
			GameOver:      true,
			NewGame:       true,
			ComputerSpeed: cfg.Speeds.Pointer.OpponentBaseSpeed,
		},
	}
}

// Tuning is the speed configuration selected once at match start.
type Tuning struct {
	Device           core.DeviceClass
	Profile          config.SpeedProfile // Tier for the match's device class
	Idle             config.SpeedProfile // Tier used until the player first moves
	TrajectoryFactor float64
	Rally            config.RallyPolicy
}

// NewTuning selects the speed tier for a device class.
func NewTuning(cfg config.PongConfig, device core.DeviceClass) Tuning {
	return Tuning{
		Device:           device,
		Profile:          cfg.Speeds.For(device),
		Idle:             cfg.Speeds.Touch,
		TrajectoryFactor: cfg.Gameplay.TrajectoryFactor,
		Rally:            cfg.Rally,
	}
}

// escalation returns the tier applied on paddle hits. Before any input the
// coarse tier applies regardless of device.
func (t Tuning) escalation(playerMoved bool) config.SpeedProfile {
	if playerMoved {
		return t.Profile
	}
	return t.Idle
}

// Cap returns the largest |speedY| the match can reach.
func (t Tuning) Cap() float64 {
	return max(t.Profile.SpeedCap, t.Idle.SpeedCap)
}

// Serve puts the ball back in the center for a new rally.
func (s *State) Serve(t Tuning) {
	s.Ball.X = s.Arena.Width / 2
	s.Ball.Y = s.Arena.Height / 2
	s.Ball.SpeedY = -t.Profile.BaseSpeed
	s.Ball.Contact = false
	s.Match.ComputerSpeed = t.Profile.OpponentBaseSpeed

	if t.Rally.ResetSpeedX {
		s.Ball.SpeedX = -t.Profile.BaseSpeed
	}
	if t.Rally.ResetPlayerMoved {
		s.Match.PlayerMoved = false
	}
}

// MaxPaddleX is the right-most legal paddle position.
func (s *State) MaxPaddleX() float64 {
	return max(s.Arena.Width-s.Player.Width, 0)
}
