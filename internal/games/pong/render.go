package pong

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '╌'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Viewport maps arena units onto screen cells, keeping the arena's aspect
// ratio and leaving room for a one-cell border.
type Viewport struct {
	Frame core.Rect // Arena interior in cells
	arena Arena
}

// NewViewport fits the arena into a screen of the given size.
func NewViewport(screenW, screenH int, arena Arena) Viewport {
	v := Viewport{arena: arena}
	availW, availH := screenW-2, screenH-2
	if availW < 1 || availH < 1 || arena.Width <= 0 || arena.Height <= 0 {
		return v
	}

	ratio := arena.Width / arena.Height * cellAspect // columns per row
	rows := availH
	cols := int(math.Round(float64(rows) * ratio))
	if cols > availW {
		cols = availW
		rows = core.Clamp(int(math.Round(float64(cols)/ratio)), 1, availH)
	}
	cols = max(cols, 1)

	v.Frame = core.NewRect((screenW-cols)/2, (screenH-rows)/2, cols, rows)
	return v
}

// Empty reports whether the screen is too small to draw the arena.
func (v Viewport) Empty() bool {
	return v.Frame.W == 0 || v.Frame.H == 0
}

// Col returns the screen column for an arena x coordinate.
func (v Viewport) Col(x float64) int {
	return v.Frame.X + int(math.Floor(x/v.arena.Width*float64(v.Frame.W)))
}

// Row returns the screen row for an arena y coordinate.
func (v Viewport) Row(y float64) int {
	return v.Frame.Y + int(math.Floor(y/v.arena.Height*float64(v.Frame.H)))
}

// ArenaX converts a screen column to the arena x at the center of that cell.
func (v Viewport) ArenaX(col int) float64 {
	if v.Empty() {
		return 0
	}
	return (float64(col-v.Frame.X) + 0.5) * v.arena.Width / float64(v.Frame.W)
}

// Contains reports whether a screen cell lies on the arena.
func (v Viewport) Contains(col, row int) bool {
	return v.Frame.Contains(col, row)
}

// Viewport returns the mapping used by Render for a screen of this size.
func (g *Game) Viewport(screenW, screenH int) Viewport {
	return NewViewport(screenW, screenH, g.state.Arena)
}

// Render draws the play surface. The results view is not part of the
// surface; the presenter draws it instead while the game is over.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := &g.state
	v := g.Viewport(dst.Width(), dst.Height())
	if v.Empty() {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}

	border := core.NewRect(v.Frame.X-1, v.Frame.Y-1, v.Frame.W+2, v.Frame.H+2)
	dst.DrawBox(border, core.ColorGray)

	// Dashed center line
	netRow := v.Row(s.Arena.Height / 2)
	for col := v.Frame.X; col < v.Frame.Right(); col += 2 {
		dst.SetColored(col, netRow, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, v, s.Player, s.Arena.Height-g.cfg.Paddles.PlayerInset)
	g.drawPaddle(dst, v, s.Opponent, g.cfg.Paddles.OpponentInset)

	// Scores sit on the left, player below the net and opponent above it
	dst.DrawTextColored(v.Col(20), v.Row(s.Arena.Height/2+50), strconv.Itoa(s.Match.PlayerScore), core.ColorYellow)
	dst.DrawTextColored(v.Col(20), v.Row(s.Arena.Height/2-30), strconv.Itoa(s.Match.OpponentScore), core.ColorYellow)

	if !s.Match.PlayerMoved {
		hint := "move the mouse or press ←/→"
		if len([]rune(hint)) <= v.Frame.W {
			col := v.Frame.X + (v.Frame.W-len([]rune(hint)))/2
			dst.DrawTextColored(col, v.Row(s.Arena.Height*0.75), hint, core.ColorGray)
		}
	}

	col, row := v.Col(s.Ball.X), v.Row(s.Ball.Y)
	if v.Contains(col, row) {
		dst.SetColored(col, row, BallChar, core.ColorBrightWhite)
	}
}

// drawPaddle draws a paddle on the given arena row, clipped to the arena.
func (g *Game) drawPaddle(dst *core.Screen, v Viewport, p Paddle, y float64) {
	row := core.Clamp(v.Row(y), v.Frame.Y, v.Frame.Bottom()-1)
	start := v.Col(p.X)
	end := max(v.Col(p.X+p.Width), start+1)
	for col := max(start, v.Frame.X); col < min(end, v.Frame.Right()); col++ {
		dst.SetColored(col, row, PaddleChar, core.ColorWhite)
	}
}
