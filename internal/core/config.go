package core

// DeviceClass selects which speed escalation table a match uses.
// It is sampled once when a match starts and never changes mid-match.
type DeviceClass int

const (
	// DevicePointer is precise pointer input (mouse).
	DevicePointer DeviceClass = iota
	// DeviceTouch is coarse touch-class input (small screens, keyboard nudges).
	DeviceTouch
)

// String returns the configuration name of the device class.
func (d DeviceClass) String() string {
	switch d {
	case DevicePointer:
		return "pointer"
	case DeviceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int         // Screen width in characters
	ScreenH  int         // Screen height in characters
	TickRate int         // Frames per second (default 60)
	Device   DeviceClass // Input device class for speed escalation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Device:   DevicePointer,
	}
}

// GameState summarizes the match for the platform after each tick.
type GameState struct {
	PlayerScore   int
	OpponentScore int
	GameOver      bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
