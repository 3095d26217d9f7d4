package pong

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome is the one-shot notification sent when a match ends.
type Outcome struct {
	Winner        Side
	PlayerScore   int
	OpponentScore int
	Stats         Stats
}

// Presenter receives lifecycle notifications. The core never draws the
// results view itself; it only tells the presenter when to show or drop it.
type Presenter interface {
	// GameOver is called once per match. The play surface is hidden.
	GameOver(Outcome)
	// Restarted is called when a match starts after a previous game over,
	// so the results view can be torn down and the surface shown again.
	Restarted()
}

// Lifecycle drives NotStarted -> Running -> GameOver -> Running transitions.
type Lifecycle struct {
	phase     Phase
	presenter Presenter
	outcome   *Outcome
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// SetPresenter attaches the presentation layer. A nil presenter is allowed.
func (l *Lifecycle) SetPresenter(p Presenter) {
	l.presenter = p
}

// Outcome returns the result of the last finished match, if any.
func (l *Lifecycle) Outcome() (Outcome, bool) {
	if l.outcome == nil {
		return Outcome{}, false
	}
	return *l.outcome, true
}

// Start begins a match: scores to zero, ball served. Calling Start while a
// match is running restarts it in place.
func (l *Lifecycle) Start(s *State, t Tuning) {
	restarting := s.Match.GameOver && !s.Match.NewGame

	s.Match.GameOver = false
	s.Match.NewGame = false
	s.Match.PlayerScore = 0
	s.Match.OpponentScore = 0
	s.Serve(t)

	l.phase = PhaseRunning
	l.outcome = nil

	if restarting && l.presenter != nil {
		l.presenter.Restarted()
	}
}

// Check ends the match once either score reaches the winning threshold.
// It returns true while the match keeps running.
func (l *Lifecycle) Check(s *State, stats Stats) bool {
	if l.phase != PhaseRunning {
		return false
	}

	winner := SideNone
	switch s.Match.WinningScore {
	case s.Match.PlayerScore:
		winner = SidePlayer
	case s.Match.OpponentScore:
		winner = SideOpponent
	}
	if winner == SideNone {
		return true
	}

	s.Match.GameOver = true
	l.phase = PhaseGameOver
	l.outcome = &Outcome{
		Winner:        winner,
		PlayerScore:   s.Match.PlayerScore,
		OpponentScore: s.Match.OpponentScore,
		Stats:         stats,
	}
	if l.presenter != nil {
		l.presenter.GameOver(*l.outcome)
	}
	return false
}
