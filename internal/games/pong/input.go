package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// MovePaddleTo places the player paddle under an absolute pointer position
// in arena units. The result is clamped to the arena; NaN lands on the left
// edge. Any input counts as the player having moved.
func (s *State) MovePaddleTo(pointerX float64) {
	s.Match.PlayerMoved = true
	s.Player.X = core.ClampF(pointerX-s.PaddleDiff, 0, s.MaxPaddleX())
}

// NudgePaddle moves the player paddle by delta as if the pointer had moved
// by that much from the paddle's aim point.
func (s *State) NudgePaddle(delta float64) {
	s.MovePaddleTo(s.Player.X + s.PaddleDiff + delta)
}

// ApplyInput feeds one frame of input into the state.
func (s *State) ApplyInput(in core.InputFrame, keyStep float64) {
	if in.HasPointer {
		s.MovePaddleTo(in.PointerX)
	}
	if in.Has(core.ActionLeft) {
		s.NudgePaddle(-keyStep)
	}
	if in.Has(core.ActionRight) {
		s.NudgePaddle(keyStep)
	}
}
