package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// countdown returns a tick func that halts after n frames.
func countdown(n int) TickFunc {
	return func() bool {
		n--
		return n > 0
	}
}

func TestDriverRendersBeforeTicking(t *testing.T) {
	var calls []string
	sched := &ManualScheduler{}
	d := NewDriver(sched,
		func() bool { calls = append(calls, "tick"); return true },
		func() { calls = append(calls, "render") },
	)

	d.Start()
	sched.Step()
	sched.Step()

	want := []string{"render", "tick", "render", "tick"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, expected %v", calls, want)
		}
	}
}

func TestDriverHaltsWhenTickReportsDone(t *testing.T) {
	sched := &ManualScheduler{}
	d := NewDriver(sched, countdown(3), nil)

	d.Start()
	if n := sched.Run(100); n != 3 {
		t.Errorf("ran %d frames, expected 3", n)
	}
	if d.Running() || d.Pending() || sched.Pending() != 0 {
		t.Error("a halted driver must not schedule another frame")
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
}

func TestDriverStop(t *testing.T) {
	sched := &ManualScheduler{}
	ticks := 0
	d := NewDriver(sched, func() bool { ticks++; return true }, nil)

	d.Start()
	sched.Step()
	d.Stop()
	sched.Run(0)

	if ticks != 1 {
		t.Errorf("ticks = %d, expected 1", ticks)
	}
	if sched.Pending() != 0 {
		t.Error("stopped driver left frames queued")
	}
}

func TestDriverStartIsIdempotent(t *testing.T) {
	sched := &ManualScheduler{}
	d := NewDriver(sched, func() bool { return true }, nil)

	d.Start()
	d.Start()
	if sched.Pending() != 1 {
		t.Errorf("pending = %d, expected 1", sched.Pending())
	}

	// Stop and start before the queued frame runs: still one frame in flight
	d.Stop()
	d.Start()
	if sched.Pending() != 1 {
		t.Errorf("pending = %d, expected 1", sched.Pending())
	}
}

func TestDriverRestartsAfterHalt(t *testing.T) {
	sched := &ManualScheduler{}
	d := NewDriver(sched, countdown(2), nil)

	d.Start()
	sched.Run(0)
	d.Start()
	sched.Step()

	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
}

func TestDriverRunsFullMatch(t *testing.T) {
	g := pong.New(config.DefaultPongConfig())
	g.Reset(core.DefaultConfig())
	g.MovePaddleTo(0) // Park the paddle away from the serve line

	screen := core.NewScreen(80, 24)
	sched := &ManualScheduler{}
	d := NewDriver(sched, g.Tick, func() { g.Render(screen) })

	d.Start()
	frames := sched.Run(0)

	if frames != 616 {
		t.Errorf("match ran %d frames, expected 616", frames)
	}
	if g.Phase() != pong.PhaseGameOver || d.Running() || sched.Pending() != 0 {
		t.Error("loop should stop scheduling once the match is over")
	}
	out, ok := g.Outcome()
	if !ok || out.Winner != pong.SideOpponent || out.OpponentScore != 7 {
		t.Errorf("outcome = %+v", out)
	}
}

func TestTickerSchedulerRunsUntilHalt(t *testing.T) {
	sched := NewTickerScheduler(1000)
	d := NewDriver(sched, countdown(5), nil)

	d.Start()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sched.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", d.Frames())
	}
}

func TestTickerSchedulerHonorsContext(t *testing.T) {
	sched := NewTickerScheduler(1000)
	d := NewDriver(sched, func() bool { return true }, nil)

	d.Start()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := sched.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, expected deadline exceeded", err)
	}
	if !d.Running() {
		t.Error("driver should still be running when the context ends")
	}
}

func TestNewTickerSchedulerDefaultsRate(t *testing.T) {
	if got := NewTickerScheduler(0).Interval(); got != time.Second/60 {
		t.Errorf("interval = %v, expected 60 fps", got)
	}
}
