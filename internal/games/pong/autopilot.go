package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Autopilot plays the player paddle for headless runs. It chases the ball
// with a limited pointer speed and a random aim offset per rally, so it
// produces angled returns and eventually misses.
type Autopilot struct {
	rng      *rand.Rand
	maxStep  float64
	aim      float64
	tracking bool
}

// NewAutopilot creates an autopilot. maxStep bounds how far the pointer
// moves per tick.
func NewAutopilot(seed int64, maxStep float64) *Autopilot {
	return &Autopilot{
		rng:     rand.New(rand.NewSource(seed)),
		maxStep: maxStep,
	}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(s State) core.InputFrame {
	towardPlayer := s.Ball.SpeedY < 0
	if towardPlayer && !a.tracking {
		a.aim = (a.rng.Float64()*2 - 1) * s.PaddleDiff
	}
	a.tracking = towardPlayer

	current := s.Player.X + s.PaddleDiff
	delta := core.ClampF(s.Ball.X+a.aim-current, -a.maxStep, a.maxStep)

	frame := core.NewInputFrame()
	frame.SetPointer(current + delta)
	return frame
}
