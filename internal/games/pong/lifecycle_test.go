package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestNewGameIsNotStarted(t *testing.T) {
	g := New(config.DefaultPongConfig())

	if g.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v, expected not started", g.Phase())
	}
	if !g.state.Match.GameOver || !g.state.Match.NewGame {
		t.Error("a fresh game should be flagged as over and new")
	}
	if g.Tick() {
		t.Error("Tick before Start should not run")
	}
}

func TestPlayerReachesWinningScore(t *testing.T) {
	g := newRunningGame(t, core.DevicePointer)
	p := &recordingPresenter{}
	g.SetPresenter(p)

	s := &g.state
	s.Match.PlayerScore = 6
	s.Ball.X, s.Ball.Y = 400, 3
	s.Ball.SpeedY = 4

	if g.Tick() {
		t.Fatal("Tick should report the loop halted")
	}
	if !s.Match.GameOver || g.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}
	if len(p.outcomes) != 1 {
		t.Fatalf("presenter notified %d times, expected once", len(p.outcomes))
	}
	out := p.outcomes[0]
	if out.Winner != SidePlayer || out.Winner.String() != "You" {
		t.Errorf("winner = %v, expected You", out.Winner)
	}
	if out.PlayerScore != 7 || out.OpponentScore != 0 {
		t.Errorf("final score = %d-%d, expected 7-0", out.PlayerScore, out.OpponentScore)
	}

	// Nothing changes until restart
	s.Ball.Y = -50
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if s.Match.PlayerScore != 7 || s.Ball.Y != -50 {
		t.Error("ticks after game over must not change the state")
	}
	if len(p.outcomes) != 1 {
		t.Error("game over must be notified only once")
	}
}

func TestOpponentReachesWinningScore(t *testing.T) {
	g := newRunningGame(t, core.DeviceTouch)
	s := &g.state
	s.Match.OpponentScore = 6
	s.Ball.X, s.Ball.Y = 10, 699
	s.Ball.SpeedY = -4

	g.Tick()

	out, ok := g.Outcome()
	if !ok {
		t.Fatal("expected an outcome")
	}
	if out.Winner != SideOpponent || out.Winner.String() != "Computer" {
		t.Errorf("winner = %v, expected Computer", out.Winner)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New(config.DefaultPongConfig())
	p := &recordingPresenter{}
	g.SetPresenter(p)

	g.Reset(core.DefaultConfig())
	if p.restarted != 0 {
		t.Error("the very first start has no results view to tear down")
	}

	g.state.Match.PlayerScore = 7
	g.Tick()
	if g.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}

	g.state.Player.X = 12
	g.Start()

	if p.restarted != 1 {
		t.Errorf("Restarted called %d times, expected 1", p.restarted)
	}
	if g.Phase() != PhaseRunning || g.state.Match.GameOver {
		t.Error("restart should resume the match")
	}
	if g.state.Match.PlayerScore != 0 || g.state.Match.OpponentScore != 0 {
		t.Error("restart should zero the scores")
	}
	if g.state.Ball.X != 250 || g.state.Ball.Y != 350 {
		t.Error("restart should serve the ball")
	}
	if g.state.Player.X != 12 {
		t.Error("paddles persist across matches")
	}
	if _, ok := g.Outcome(); ok {
		t.Error("outcome should be cleared on restart")
	}
}

func TestStartSamplesDeviceClass(t *testing.T) {
	g := New(config.DefaultPongConfig())
	rt := core.DefaultConfig()
	rt.Device = core.DeviceTouch
	g.Reset(rt)

	if g.Tuning().Device != core.DeviceTouch || g.Tuning().Profile.SpeedCap != 7.5 {
		t.Errorf("tuning = %+v, expected touch tier", g.Tuning())
	}
}
