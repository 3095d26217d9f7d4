package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const historyRows = 5 // Visible rows of the session table

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	winTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	scoreStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
)

// resultsPanel is the end-of-match view. It receives the lifecycle
// notifications from the game and records each finished match.
type resultsPanel struct {
	visible bool
	matchID uuid.UUID
	device  core.DeviceClass
	record  MatchRecord
	history *History
	logger  *log.Logger
	table   table.Model
}

func newResultsPanel(history *History, logger *log.Logger) *resultsPanel {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithFocused(true),
		table.WithHeight(historyRows+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &resultsPanel{
		history: history,
		logger:  logger,
		table:   t,
	}
}

// begin tags the match about to start.
func (p *resultsPanel) begin(device core.DeviceClass) uuid.UUID {
	p.matchID = uuid.New()
	p.device = device
	return p.matchID
}

// GameOver records the match and shows the panel.
func (p *resultsPanel) GameOver(o pong.Outcome) {
	p.record = MatchRecord{
		ID:         p.matchID,
		Device:     p.device,
		Outcome:    o,
		FinishedAt: time.Now(),
	}
	p.history.Add(p.record)
	p.table.SetRows(p.history.rows())
	p.table.GotoTop()
	p.visible = true

	p.logger.Info("game over",
		"match", p.record.ShortID(),
		"winner", o.Winner.String(),
		"player", o.PlayerScore,
		"computer", o.OpponentScore,
		"ticks", o.Stats.Ticks,
	)
}

// Restarted hides the panel so the play surface shows again.
func (p *resultsPanel) Restarted() {
	p.visible = false
	p.logger.Debug("results panel closed", "match", p.record.ShortID())
}

// View renders the panel centered in a width x height area.
func (p *resultsPanel) View(width, height int, helpView string) string {
	o := p.record.Outcome

	titleStyle := loseTitleStyle
	if o.Winner == pong.SidePlayer {
		titleStyle = winTitleStyle
	}
	title := titleStyle.Render(fmt.Sprintf("%s Won!", o.Winner))
	score := scoreStyle.Render(fmt.Sprintf("You %d : %d Computer", o.PlayerScore, o.OpponentScore))
	stats := dimStyle.Render(fmt.Sprintf("rallies %d · your hits %d · best rally %d · top speed %.1f",
		o.Stats.Rallies, o.Stats.PlayerHits, o.Stats.LongestRally, o.Stats.PeakSpeedY))

	won, lost := p.history.Tally()
	tally := dimStyle.Render(fmt.Sprintf("this session: won %d, lost %d", won, lost))

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		score,
		stats,
		"",
		p.table.View(),
		tally,
		"",
		buttonStyle.Render("Play Again"),
	)

	view := lipgloss.JoinVertical(lipgloss.Center, panelStyle.Render(body), dimStyle.Render(helpView))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
