package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  500,
			Height: 700,
		},
		Paddles: PaddleConfig{
			Width:         67.5,
			Height:        10,
			Diff:          25,
			StartX:        215,
			PlayerInset:   20,
			OpponentInset: 10,
		},
		Ball: BallConfig{
			Radius: 6,
		},
		Gameplay: GameplayConfig{
			WinningScore:     7,
			TrajectoryFactor: 0.25,
			KeyStep:          25,
		},
		Speeds: SpeedTable{
			Pointer: SpeedProfile{
				BaseSpeed:         4,
				EscalationStep:    4,
				SpeedCap:          8,
				OpponentBaseSpeed: 9,
				OpponentCapSpeed:  7.8,
				ReturnRule:        ReturnAccelerate,
			},
			Touch: SpeedProfile{
				BaseSpeed:         4,
				EscalationStep:    3.5,
				SpeedCap:          7.5,
				OpponentBaseSpeed: 9,
				OpponentCapSpeed:  7.3,
				ReturnRule:        ReturnSettle,
			},
		},
		Device: DeviceConfig{
			Class:         DeviceAuto,
			TouchMaxWidth: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
