package tui

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neonbreaker/internal/core"
	"github.com/vovakirdan/neonbreaker/internal/game"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	BrickChar    = '█'
	TrailChar    = '•'
	ParticleChar = '·'
)

// Text colors
const (
	ScoreColor    core.Color = "#39ff14"
	LivesColor    core.Color = "#fffb00"
	TitleColor    core.Color = "#00fff7"
	SubtitleColor core.Color = "#ff00ea"
	WinColor      core.Color = "#39ff14"
	LoseColor     core.Color = "#ff007f"
	BorderColor   core.Color = "#00bfff"
)

// Viewport maps field pixels to the cells inside the play area border.
// Row 0 holds the HUD and the border takes one cell on every side.
type Viewport struct {
	X0, Y0 int // Top-left inner cell
	W, H   int // Inner size in cells

	fieldW, fieldH float64
}

// NewViewport lays out the play area for a screen of the given size.
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	return Viewport{
		X0:     1,
		Y0:     2,
		W:      max(screenW-2, 1),
		H:      max(screenH-3, 1),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Cell returns the screen cell containing field point p, clamped to the play area.
func (v Viewport) Cell(p core.Vec) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// Visible reports whether a field point lies inside the field.
func (v Viewport) Visible(p core.Vec) bool {
	return p.X >= 0 && p.X < v.fieldW && p.Y >= 0 && p.Y < v.fieldH
}

// FieldX converts a screen column to the field x at the center of that cell.
func (v Viewport) FieldX(col int) float64 {
	c := core.Clamp(col-v.X0, 0, v.W-1)
	return (float64(c) + 0.5) * v.fieldW / float64(v.W)
}

// Span returns the first column and the column count covered by a field
// interval. Every non-empty interval covers at least one cell.
func (v Viewport) Span(x, w float64) (int, int) {
	start := v.col(x)
	end := v.col(x + w - 1e-9)
	return start, end - start + 1
}

func (v Viewport) col(x float64) int {
	c := int(math.Floor(x / v.fieldW * float64(v.W)))
	return v.X0 + core.Clamp(c, 0, v.W-1)
}

func (v Viewport) row(y float64) int {
	r := int(math.Floor(y / v.fieldH * float64(v.H)))
	return v.Y0 + core.Clamp(r, 0, v.H-1)
}

// Fade darkens a color toward black by the remaining alpha in [0, 1].
// Colors that fail to parse are returned unchanged.
func Fade(c core.Color, alpha float64) core.Color {
	col, err := colorful.Hex(c.Hex())
	if err != nil {
		return c
	}
	black := colorful.Color{}
	return core.Color(black.BlendRgb(col, core.ClampF(alpha, 0, 1)).Clamped().Hex())
}

// Draw paints a full frame: border, bricks, effects, paddle, ball, HUD and
// the overlay for the current phase.
func Draw(s *core.Screen, snap *game.Snapshot) {
	s.Clear()

	if s.Width() < core.MinScreenW || s.Height() < core.MinScreenH {
		drawTooSmall(s)
		return
	}

	v := NewViewport(s.Width(), s.Height(), snap.Width, snap.Height)
	s.DrawBox(v.X0-1, v.Y0-1, v.W+2, v.H+2, BorderColor)

	drawBricks(s, v, snap.Bricks)
	drawParticles(s, v, snap.Particles)
	drawTrail(s, v, snap.Ball)
	drawPaddle(s, v, snap.Paddle)
	drawBall(s, v, snap.Ball)
	drawHUD(s, snap)

	switch snap.Phase {
	case game.PhaseStart:
		drawOverlay(s, v, "NEON BRICK BREAKER", TitleColor, "Press SPACE to Start", SubtitleColor)
	case game.PhaseGameOver:
		drawOverlay(s, v, "GAME OVER", LoseColor, "Press SPACE to Restart", TitleColor)
	case game.PhaseWin:
		drawOverlay(s, v, "YOU WIN!", WinColor, "Press SPACE to Restart", TitleColor)
	case game.PhaseRunning:
	}
}

func drawBricks(s *core.Screen, v Viewport, bricks []game.BrickView) {
	for _, b := range bricks {
		x, w := v.Span(b.X, b.W)
		y, h := v.row(b.Y), 1
		if last := v.row(b.Y + b.H - 1e-9); last > y {
			h = last - y + 1
		}
		s.DrawRect(x, y, w, h, BrickChar, b.Color)
	}
}

func drawParticles(s *core.Screen, v Viewport, particles []game.ParticleView) {
	for _, p := range particles {
		pos := core.V(p.X, p.Y)
		if !v.Visible(pos) {
			continue
		}
		x, y := v.Cell(pos)
		s.SetColored(x, y, ParticleChar, Fade(p.Color, p.Alpha))
	}
}

// drawTrail draws older positions first so newer ones win shared cells.
func drawTrail(s *core.Screen, v Viewport, ball game.BallView) {
	n := len(ball.Trail)
	for i := n - 1; i >= 0; i-- {
		p := ball.Trail[i]
		if !v.Visible(p) {
			continue
		}
		alpha := 1 - float64(i+1)/float64(n+1)
		x, y := v.Cell(p)
		s.SetColored(x, y, TrailChar, Fade(ball.Color, alpha))
	}
}

func drawPaddle(s *core.Screen, v Viewport, p game.PaddleView) {
	x, w := v.Span(p.X, p.W)
	y := v.row(p.Y)
	s.DrawHLine(x, y, w, PaddleChar, p.Color)
}

func drawBall(s *core.Screen, v Viewport, b game.BallView) {
	pos := core.V(b.X, b.Y)
	if !v.Visible(pos) {
		return
	}
	x, y := v.Cell(pos)
	s.SetColored(x, y, BallChar, b.Color)
}

func drawHUD(s *core.Screen, snap *game.Snapshot) {
	s.DrawTextColored(1, 0, fmt.Sprintf("SCORE: %d", snap.Score), ScoreColor)

	lives := fmt.Sprintf("LIVES: %d", snap.Lives)
	s.DrawTextColored(s.Width()-1-utf8.RuneCountInString(lives), 0, lives, LivesColor)

	bricks := fmt.Sprintf("%d/%d", snap.BricksRemaining, snap.BricksTotal)
	s.DrawTextCentered(0, bricks, core.ColorDefault)
}

// drawOverlay draws a boxed two-line message in the middle of the play area.
func drawOverlay(s *core.Screen, v Viewport, title string, titleColor core.Color, sub string, subColor core.Color) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(sub)) + 6
	w = min(w, v.W)
	h := 5
	x := v.X0 + (v.W-w)/2
	y := v.Y0 + (v.H-h)/2

	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, titleColor)
	s.DrawTextCentered(y+1, title, titleColor)
	s.DrawTextCentered(y+3, sub, subColor)
}

func drawTooSmall(s *core.Screen) {
	y := s.Height() / 2
	s.DrawTextCentered(y-1, "Terminal too small", LoseColor)
	s.DrawTextCentered(y, fmt.Sprintf("need %dx%d", core.MinScreenW, core.MinScreenH), core.ColorDefault)
}
