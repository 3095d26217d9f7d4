package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestMoveBallVerticalOnly(t *testing.T) {
	g := newRunningGame(t, core.DevicePointer)
	s := &g.state
	s.Match.PlayerMoved = true
	s.Ball.X, s.Ball.Y = 250, 345
	s.Ball.SpeedY = -4

	MoveBall(s)

	if s.Ball.Y != 349 {
		t.Errorf("ball y = %v, expected 349", s.Ball.Y)
	}
	if s.Ball.X != 250 {
		t.Errorf("ball x = %v, expected 250 without paddle contact", s.Ball.X)
	}
}

func TestMoveBallHorizontalGates(t *testing.T) {
	tests := []struct {
		name        string
		playerMoved bool
		contact     bool
		wantX       float64
	}{
		{"no input, no contact", false, false, 100},
		{"no input, contact", false, true, 100},
		{"input, no contact", true, false, 100},
		{"input and contact", true, true, 103},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &State{}
			s.Ball = Ball{X: 100, Y: 100, SpeedX: 3, SpeedY: 5, Contact: tc.contact}
			s.Match.PlayerMoved = tc.playerMoved

			MoveBall(s)

			if s.Ball.X != tc.wantX {
				t.Errorf("ball x = %v, expected %v", s.Ball.X, tc.wantX)
			}
			// Positive speedY moves the ball up
			if s.Ball.Y != 95 {
				t.Errorf("ball y = %v, expected 95", s.Ball.Y)
			}
		})
	}
}
