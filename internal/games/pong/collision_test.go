package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestSideWalls(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		speedX float64
		want   float64
		wall   bool
	}{
		{"past left heading out", -1, -3, 3, true},
		{"past left heading back in", -1, 3, 3, false},
		{"past right heading out", 501, 2, -2, true},
		{"past right heading back in", 501, -2, -2, false},
		{"inside", 250, -3, -3, false},
		{"exactly on left wall", 0, -3, -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunningGame(t, core.DevicePointer)
			s := &g.state
			s.Ball.X, s.Ball.Y = tc.x, 300
			s.Ball.SpeedX = tc.speedX

			c := Resolve(s, g.tuning)

			if s.Ball.SpeedX != tc.want {
				t.Errorf("speedX = %v, expected %v", s.Ball.SpeedX, tc.want)
			}
			if c.Wall != tc.wall {
				t.Errorf("Wall = %v, expected %v", c.Wall, tc.wall)
			}
		})
	}
}

func TestPlayerPaddleHit(t *testing.T) {
	tests := []struct {
		name          string
		device        core.DeviceClass
		moved         bool
		speedY        float64
		wantSpeedY    float64
		wantComputer  float64
		wantHorizontal float64
	}{
		{"pointer first hit", core.DevicePointer, true, -4, 8, 9, 8.75},
		{"pointer at cap", core.DevicePointer, true, -8, 8, 7.8, 8.75},
		{"pointer before any input uses touch tier", core.DevicePointer, false, -4, 7.5, 9, 8.75},
		{"touch first hit", core.DeviceTouch, true, -4, 7.5, 9, 8.75},
		{"touch at cap", core.DeviceTouch, true, -7.5, 7.5, 7.3, 8.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunningGame(t, tc.device)
			s := &g.state
			s.Match.PlayerMoved = tc.moved
			s.Player.X = 200
			s.Ball.X, s.Ball.Y = 260, 680
			s.Ball.SpeedY = tc.speedY

			c := Resolve(s, g.tuning)

			if !c.PlayerHit || !s.Ball.Contact {
				t.Fatalf("expected a player hit, got %+v", c)
			}
			if s.Ball.SpeedY != tc.wantSpeedY {
				t.Errorf("speedY = %v, expected %v", s.Ball.SpeedY, tc.wantSpeedY)
			}
			if s.Match.ComputerSpeed != tc.wantComputer {
				t.Errorf("computer speed = %v, expected %v", s.Match.ComputerSpeed, tc.wantComputer)
			}
			// (260 - (200 + 25)) * 0.25
			if s.Ball.SpeedX != tc.wantHorizontal {
				t.Errorf("speedX = %v, expected %v", s.Ball.SpeedX, tc.wantHorizontal)
			}
			if c.Scored != SideNone {
				t.Errorf("a hit should not score, got %v", c.Scored)
			}
		})
	}
}

func TestPlayerHitAngleFollowsOffset(t *testing.T) {
	for _, ballX := range []float64{216, 225, 240, 260, 282} {
		g := newRunningGame(t, core.DevicePointer)
		s := &g.state
		s.Match.PlayerMoved = true
		s.Ball.X, s.Ball.Y = ballX, 690

		Resolve(s, g.tuning)

		want := (ballX - (s.Player.X + s.PaddleDiff)) * 0.25
		if s.Ball.SpeedX != want {
			t.Errorf("ball x %v: speedX = %v, expected %v", ballX, s.Ball.SpeedX, want)
		}
	}
}

func TestPlayerZoneMissWithoutScore(t *testing.T) {
	g := newRunningGame(t, core.DevicePointer)
	s := &g.state
	s.Match.PlayerMoved = true
	s.Ball.X, s.Ball.Y = 400, 681

	c := Resolve(s, g.tuning)

	if c.PlayerHit || s.Ball.Contact {
		t.Error("ball outside [215, 282.5] should not register contact")
	}
	if c.Scored != SideNone || s.Match.OpponentScore != 0 {
		t.Error("ball still inside the arena should not score")
	}
	if s.Ball.Y != 681 || s.Ball.X != 400 {
		t.Errorf("ball should continue untouched, got (%v, %v)", s.Ball.X, s.Ball.Y)
	}
}

func TestBottomExitScoresForOpponent(t *testing.T) {
	g := newRunningGame(t, core.DevicePointer)
	s := &g.state
	s.Match.PlayerMoved = true
	s.Match.ComputerSpeed = 7.8
	s.Ball.X, s.Ball.Y = 400, 705
	s.Ball.SpeedX = 3.25
	s.Ball.SpeedY = -8

	c := Resolve(s, g.tuning)

	if c.Scored != SideOpponent || s.Match.OpponentScore != 1 || s.Match.PlayerScore != 0 {
		t.Fatalf("expected computer point, got %+v scores %d-%d", c, s.Match.PlayerScore, s.Match.OpponentScore)
	}
	if s.Ball.X != 250 || s.Ball.Y != 350 {
		t.Errorf("ball should be served from (250, 350), got (%v, %v)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.SpeedY != -4 {
		t.Errorf("speedY = %v, expected -4", s.Ball.SpeedY)
	}
	if s.Ball.Contact {
		t.Error("serve should clear contact")
	}
	if s.Match.ComputerSpeed != 9 {
		t.Errorf("computer speed = %v, expected 9", s.Match.ComputerSpeed)
	}
	// Kept across serves by default
	if s.Ball.SpeedX != 3.25 || !s.Match.PlayerMoved {
		t.Errorf("speedX and playerMoved should survive the serve, got %v %v", s.Ball.SpeedX, s.Match.PlayerMoved)
	}
}

func TestTopExitScoresForPlayer(t *testing.T) {
	g := newRunningGame(t, core.DevicePointer)
	s := &g.state
	s.Ball.X, s.Ball.Y = 400, -2

	c := Resolve(s, g.tuning)

	if c.Scored != SidePlayer || s.Match.PlayerScore != 1 || s.Match.OpponentScore != 0 {
		t.Fatalf("expected player point, got %+v", c)
	}
	if s.Ball.Y != 350 {
		t.Errorf("ball should be served, y = %v", s.Ball.Y)
	}
}

func TestOpponentPaddleReturn(t *testing.T) {
	tests := []struct {
		name   string
		device core.DeviceClass
		moved  bool
		speedY float64
		want   float64
	}{
		{"pointer accelerates to cap", core.DevicePointer, true, 8, -8},
		{"pointer accelerates below cap", core.DevicePointer, true, 3, -7},
		{"touch settles at cap", core.DeviceTouch, true, 7.5, -7.5},
		{"pointer idle uses touch tier", core.DevicePointer, false, 7.5, -7.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunningGame(t, tc.device)
			s := &g.state
			s.Match.PlayerMoved = tc.moved
			s.Ball.X, s.Ball.Y = 250, 20
			s.Ball.SpeedX = -1.5
			s.Ball.SpeedY = tc.speedY

			c := Resolve(s, g.tuning)

			if !c.OpponentHit {
				t.Fatal("expected an opponent hit")
			}
			if s.Ball.SpeedY != tc.want {
				t.Errorf("speedY = %v, expected %v", s.Ball.SpeedY, tc.want)
			}
			if s.Ball.SpeedX != -1.5 {
				t.Errorf("opponent hit should keep speedX, got %v", s.Ball.SpeedX)
			}
		})
	}
}

func TestRallyPolicyResets(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Rally = config.RallyPolicy{ResetSpeedX: true, ResetPlayerMoved: true}

	g := New(cfg)
	g.Reset(core.DefaultConfig())
	s := &g.state
	s.Match.PlayerMoved = true
	s.Ball.SpeedX = 6
	s.Ball.X, s.Ball.Y = 400, 710

	Resolve(s, g.tuning)

	if s.Ball.SpeedX != -4 {
		t.Errorf("speedX = %v, expected reset to -4", s.Ball.SpeedX)
	}
	if s.Match.PlayerMoved {
		t.Error("playerMoved should be cleared by the policy")
	}
}

func TestSpeedNeverExceedsCap(t *testing.T) {
	for _, device := range []core.DeviceClass{core.DevicePointer, core.DeviceTouch} {
		g := newRunningGame(t, device)
		pilot := NewAutopilot(7, 9)
		limit := g.tuning.Profile.SpeedCap

		for i := 0; i < 20000 && g.Phase() == PhaseRunning; i++ {
			g.Step(pilot.Next(g.state))
			if math.Abs(g.state.Ball.SpeedY) > limit {
				t.Fatalf("%v tick %d: |speedY| = %v exceeds cap %v", device, i, math.Abs(g.state.Ball.SpeedY), limit)
			}
		}
	}
}
