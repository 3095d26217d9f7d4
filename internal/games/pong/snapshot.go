package pong

// Snapshot is a plain copy of the game state for printing and inspection.
type Snapshot struct {
	Phase         string  `yaml:"phase"`
	Device        string  `yaml:"device"`
	BallX         float64 `yaml:"ball_x"`
	BallY         float64 `yaml:"ball_y"`
	SpeedX        float64 `yaml:"speed_x"`
	SpeedY        float64 `yaml:"speed_y"`
	Contact       bool    `yaml:"contact"`
	PlayerX       float64 `yaml:"player_x"`
	OpponentX     float64 `yaml:"opponent_x"`
	ComputerSpeed float64 `yaml:"computer_speed"`
	PlayerScore   int     `yaml:"player_score"`
	OpponentScore int     `yaml:"opponent_score"`
	PlayerMoved   bool    `yaml:"player_moved"`
	GameOver      bool    `yaml:"game_over"`
	Winner        string  `yaml:"winner,omitempty"`
	Stats         Stats   `yaml:"stats"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Phase:         g.Phase().String(),
		Device:        g.tuning.Device.String(),
		BallX:         s.Ball.X,
		BallY:         s.Ball.Y,
		SpeedX:        s.Ball.SpeedX,
		SpeedY:        s.Ball.SpeedY,
		Contact:       s.Ball.Contact,
		PlayerX:       s.Player.X,
		OpponentX:     s.Opponent.X,
		ComputerSpeed: s.Match.ComputerSpeed,
		PlayerScore:   s.Match.PlayerScore,
		OpponentScore: s.Match.OpponentScore,
		PlayerMoved:   s.Match.PlayerMoved,
		GameOver:      s.Match.GameOver,
		Stats:         g.stats,
	}
	if out, ok := g.Outcome(); ok {
		snap.Winner = out.Winner.String()
	}
	return snap
}
