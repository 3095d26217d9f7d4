package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// MatchRecord is one finished match kept for the results panel.
type MatchRecord struct {
	ID         uuid.UUID
	Device     core.DeviceClass
	Outcome    pong.Outcome
	FinishedAt time.Time
}

// ShortID returns the first block of the match ID.
func (r MatchRecord) ShortID() string {
	return r.ID.String()[:8]
}

// History lists the matches played in this process, newest first.
// Nothing is written to disk.
type History struct {
	mu      sync.Mutex
	records []MatchRecord
	limit   int
}

// NewHistory creates a history keeping at most limit records.
// A limit of zero or less keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add records a finished match.
func (h *History) Add(r MatchRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append([]MatchRecord{r}, h.records...)
	if h.limit > 0 && len(h.records) > h.limit {
		h.records = h.records[:h.limit]
	}
}

// Records returns a copy of the stored matches, newest first.
func (h *History) Records() []MatchRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]MatchRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Tally returns how many stored matches each side won.
func (h *History) Tally() (player, opponent int) {
	for _, r := range h.Records() {
		switch r.Outcome.Winner {
		case pong.SidePlayer:
			player++
		case pong.SideOpponent:
			opponent++
		}
	}
	return player, opponent
}

// historyColumns are the columns of the session table.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Match", Width: 10},
		{Title: "Winner", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Hits", Width: 6},
		{Title: "Best rally", Width: 11},
		{Title: "Device", Width: 8},
	}
}

// rows converts the history into table rows.
func (h *History) rows() []table.Row {
	records := h.Records()
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.ShortID(),
			r.Outcome.Winner.String(),
			fmt.Sprintf("%d:%d", r.Outcome.PlayerScore, r.Outcome.OpponentScore),
			fmt.Sprintf("%d", r.Outcome.Stats.PlayerHits),
			fmt.Sprintf("%d", r.Outcome.Stats.LongestRally),
			r.Device.String(),
		}
	}
	return rows
}
