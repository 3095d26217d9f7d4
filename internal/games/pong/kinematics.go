package pong

// MoveBall advances the ball by one tick. The ball only travels sideways
// once the player has moved and returned it at least once this rally.
func MoveBall(s *State) {
	s.Ball.Y += -s.Ball.SpeedY
	if s.Match.PlayerMoved && s.Ball.Contact {
		s.Ball.X += s.Ball.SpeedX
	}
}
