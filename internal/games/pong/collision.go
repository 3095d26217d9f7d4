package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Contact describes what the ball touched during one resolution pass.
type Contact struct {
	Wall        bool
	PlayerHit   bool
	OpponentHit bool
	Scored      Side // Side that won the point, SideNone if the rally goes on
}

// Resolve handles walls, paddle hits and scoring for one tick, in that order:
// side walls, player zone, opponent zone. Leaving through the top or bottom
// outside a paddle is a point, never a bounce.
func Resolve(s *State, t Tuning) Contact {
	var c Contact
	c.Wall = bounceSideWalls(s)

	if s.Ball.Y > s.Arena.Height-s.PaddleDiff {
		switch {
		case s.Player.Span().Inside(s.Ball.X):
			returnFromPlayer(s, t)
			c.PlayerHit = true
		case s.Ball.Y > s.Arena.Height:
			s.Serve(t)
			s.Match.OpponentScore++
			c.Scored = SideOpponent
		}
	}

	if s.Ball.Y < s.PaddleDiff {
		switch {
		case s.Opponent.Span().Inside(s.Ball.X):
			returnFromOpponent(s, t)
			c.OpponentHit = true
		case s.Ball.Y < 0:
			s.Serve(t)
			s.Match.PlayerScore++
			c.Scored = SidePlayer
		}
	}

	return c
}

// bounceSideWalls reflects the horizontal speed when the ball is past a side
// wall and still heading outward.
func bounceSideWalls(s *State) bool {
	if s.Ball.X < 0 && s.Ball.SpeedX < 0 {
		s.Ball.SpeedX = -s.Ball.SpeedX
		return true
	}
	if s.Ball.X > s.Arena.Width && s.Ball.SpeedX > 0 {
		s.Ball.SpeedX = -s.Ball.SpeedX
		return true
	}
	return false
}

// returnFromPlayer speeds the ball up, sends it back toward the opponent and
// angles it by how far off-center it landed.
func returnFromPlayer(s *State, t Tuning) {
	p := t.escalation(s.Match.PlayerMoved)

	s.Ball.Contact = true
	s.Ball.SpeedY -= p.EscalationStep
	if s.Ball.SpeedY < -p.SpeedCap {
		s.Ball.SpeedY = -p.SpeedCap
		s.Match.ComputerSpeed = p.OpponentCapSpeed
	}
	s.Ball.SpeedY = -s.Ball.SpeedY

	trajectory := s.Ball.X - (s.Player.X + s.PaddleDiff)
	s.Ball.SpeedX = trajectory * t.TrajectoryFactor
}

// returnFromOpponent sends the ball back toward the player. The horizontal
// speed from the last player hit is kept.
func returnFromOpponent(s *State, t Tuning) {
	p := t.escalation(s.Match.PlayerMoved)

	switch p.ReturnRule {
	case config.ReturnSettle:
		s.Ball.SpeedY = math.Max(s.Ball.SpeedY-p.EscalationStep, p.SpeedCap)
	default:
		s.Ball.SpeedY = math.Min(s.Ball.SpeedY+p.EscalationStep, p.SpeedCap)
	}
	s.Ball.SpeedY = -s.Ball.SpeedY
}
