// Package config provides YAML-based game configuration loading for the
// pong arcade: arena geometry, the two-tier speed table and device-class
// selection.
package config

import "github.com/vovakirdan/tui-pong/internal/core"

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Speeds   SpeedTable     `yaml:"speeds"`
	Device   DeviceConfig   `yaml:"device"`
	Rally    RallyPolicy    `yaml:"rally"`
}

// ArenaConfig defines the play field in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines both paddles. Diff is the vertical contact zone depth
// and also the aim offset used when computing return angles.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Diff          float64 `yaml:"diff"`
	StartX        float64 `yaml:"start_x"`
	PlayerInset   float64 `yaml:"player_inset"`   // Player paddle drawn at height - inset
	OpponentInset float64 `yaml:"opponent_inset"` // Opponent paddle drawn at inset
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinningScore     int     `yaml:"winning_score"`
	TrajectoryFactor float64 `yaml:"trajectory_factor"` // Off-center hit distance to horizontal speed
	KeyStep          float64 `yaml:"key_step"`          // Paddle nudge per key press
}

// Return rules for the opponent paddle.
const (
	// ReturnAccelerate adds the escalation step and caps at SpeedCap.
	ReturnAccelerate = "accelerate"
	// ReturnSettle subtracts the escalation step but never drops below SpeedCap.
	ReturnSettle = "settle"
)

// SpeedProfile is the speed escalation record for one device class.
type SpeedProfile struct {
	BaseSpeed         float64 `yaml:"base_speed"`          // |speedY| after a serve
	EscalationStep    float64 `yaml:"escalation_step"`     // Added to |speedY| on each player hit
	SpeedCap          float64 `yaml:"speed_cap"`           // Max |speedY|
	OpponentBaseSpeed float64 `yaml:"opponent_base_speed"` // Opponent step per tick after a serve
	OpponentCapSpeed  float64 `yaml:"opponent_cap_speed"`  // Opponent step once the ball is capped
	ReturnRule        string  `yaml:"return_rule"`         // accelerate or settle
}

// SpeedTable holds the two escalation tiers.
type SpeedTable struct {
	Pointer SpeedProfile `yaml:"pointer"`
	Touch   SpeedProfile `yaml:"touch"`
}

// For returns the profile for a device class.
func (t SpeedTable) For(class core.DeviceClass) SpeedProfile {
	if class == core.DeviceTouch {
		return t.Touch
	}
	return t.Pointer
}

// DeviceConfig controls device-class selection.
type DeviceConfig struct {
	Class         string `yaml:"class"`           // auto, pointer or touch
	TouchMaxWidth int    `yaml:"touch_max_width"` // auto: terminals this narrow count as touch-class
}

// RallyPolicy controls what a serve resets beyond the ball position,
// vertical speed, contact flag and opponent speed.
type RallyPolicy struct {
	ResetSpeedX      bool `yaml:"reset_speed_x"`
	ResetPlayerMoved bool `yaml:"reset_player_moved"`
}
