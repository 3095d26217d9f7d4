package pong

// TrackBall moves the opponent paddle one fixed step toward the ball.
// The opponent stays put until the player has moved. There is no easing
// and no clamping: the paddle may overshoot and leave the arena.
func TrackBall(s *State) {
	if !s.Match.PlayerMoved {
		return
	}
	if s.Opponent.X+s.PaddleDiff < s.Ball.X {
		s.Opponent.X += s.Match.ComputerSpeed
	} else {
		s.Opponent.X -= s.Match.ComputerSpeed
	}
}
