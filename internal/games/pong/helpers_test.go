package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// newRunningGame returns a started game for the given device class.
func newRunningGame(t *testing.T, device core.DeviceClass) *Game {
	t.Helper()
	g := New(config.DefaultPongConfig())
	rt := core.DefaultConfig()
	rt.Device = device
	g.Reset(rt)
	return g
}

// recordingPresenter counts lifecycle notifications.
type recordingPresenter struct {
	outcomes  []Outcome
	restarted int
}

func (p *recordingPresenter) GameOver(o Outcome) { p.outcomes = append(p.outcomes, o) }
func (p *recordingPresenter) Restarted()         { p.restarted++ }
