package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/loop"
)

// Options configures a play session.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	History *History    // Shared across matches; nil creates a fresh one
	Logger  *log.Logger // nil discards
}

// Model is the Bubble Tea model for a pong session.
type Model struct {
	game     *pong.Game
	driver   *loop.Driver
	sched    *frameScheduler
	screen   *core.Screen
	results  *resultsPanel
	logger   *log.Logger
	cfg      config.PongConfig
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates the model and starts the first match.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	history := opts.History
	if history == nil {
		history = NewHistory(0)
	}
	runtime := opts.Runtime
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	game := pong.New(opts.Config)
	screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	sched := &frameScheduler{}
	results := newResultsPanel(history, logger)
	game.SetPresenter(results)

	h := help.New()
	h.Width = runtime.ScreenW

	m := Model{
		game:    game,
		driver:  loop.NewDriver(sched, game.Tick, func() { game.Render(screen) }),
		sched:   sched,
		screen:  screen,
		results: results,
		logger:  logger,
		cfg:     opts.Config,
		runtime: runtime,
		keys:    DefaultKeyMap(),
		help:    h,
	}
	m.startMatch()
	return m
}

// startMatch samples the device class, then starts or restarts the match
// and resumes the frame loop.
func (m *Model) startMatch() {
	m.runtime.Device = m.cfg.Device.ResolveDevice(m.runtime.ScreenW)
	id := m.results.begin(m.runtime.Device)

	m.game.Reset(m.runtime)
	m.game.Render(m.screen)
	m.driver.Start()

	m.logger.Info("match started",
		"game", m.game.ID(),
		"match", id.String()[:8],
		"device", m.runtime.Device.String(),
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.sched.cmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit

	case core.ActionConfirm:
		if m.results.visible {
			m.startMatch()
			return m, m.sched.cmd(m.runtime.TickRate)
		}
		return m, nil

	case core.ActionLeft, core.ActionRight:
		if !m.results.visible {
			frame := core.NewInputFrame()
			frame.Set(action)
			m.game.ApplyInput(frame)
		}
		return m, nil
	}

	if m.results.visible {
		var cmd tea.Cmd
		m.results.table, cmd = m.results.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse treats the mouse column as the pointer position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.results.visible || tea.MouseEvent(msg).IsWheel() {
		return m, nil
	}

	v := m.game.Viewport(m.screen.Width(), m.screen.Height())
	if v.Empty() {
		return m, nil
	}
	m.game.MovePaddleTo(v.ArenaX(msg.X))
	return m, nil
}

// handleResize processes window resize events. The match keeps going; only
// the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.game.Render(m.screen)
	return m, nil
}

// handleTick runs one frame of the loop and asks for the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.game.State()
	m.sched.fire()
	after := m.game.State()

	if after.PlayerScore != before.PlayerScore || after.OpponentScore != before.OpponentScore {
		m.logger.Debug("point scored", "player", after.PlayerScore, "computer", after.OpponentScore)
	}

	return m, m.sched.cmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.results.visible {
		return m.results.View(m.screen.Width(), m.screen.Height(), m.help.View(m.keys))
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer input comes from mouse motion
	)

	_, err := p.Run()
	return err
}
