package pong

import "math"

// Stats are per-match rally statistics. They live only as long as the
// process; nothing is persisted.
type Stats struct {
	Ticks        int     `yaml:"ticks"`
	Rallies      int     `yaml:"rallies"` // Points played
	PlayerHits   int     `yaml:"player_hits"`
	OpponentHits int     `yaml:"opponent_hits"`
	WallBounces  int     `yaml:"wall_bounces"`
	LongestRally int     `yaml:"longest_rally"` // Most paddle hits in a single rally
	PeakSpeedY   float64 `yaml:"peak_speed_y"`

	rallyHits int
}

// record folds one resolution pass into the statistics.
func (st *Stats) record(c Contact, speedY float64) {
	st.Ticks++
	if c.Wall {
		st.WallBounces++
	}
	if c.PlayerHit {
		st.PlayerHits++
		st.rallyHits++
	}
	if c.OpponentHit {
		st.OpponentHits++
		st.rallyHits++
	}
	st.LongestRally = max(st.LongestRally, st.rallyHits)
	st.PeakSpeedY = math.Max(st.PeakSpeedY, math.Abs(speedY))

	if c.Scored != SideNone {
		st.Rallies++
		st.rallyHits = 0
	}
}
