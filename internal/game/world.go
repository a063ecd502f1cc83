// Package game implements the Neon Breaker simulation: a ball bouncing between a
// paddle and a fixed grid of bricks, with particle bursts on every collision.
//
// The package has no terminal or timing dependencies. A driver calls Step once
// per frame, feeds player intents through the Game's intent methods, and reads
// a Snapshot to draw.
package game

import (
	"github.com/vovakirdan/neonbreaker/internal/config"
	"github.com/vovakirdan/neonbreaker/internal/core"
)

// Paddle is the player-controlled bar at the bottom of the field.
// Invariant: 0 <= X <= field width - W.
type Paddle struct {
	X, Y  float64 // Top-left corner; Y never changes
	W, H  float64
	DX    float64 // Horizontal velocity per tick, set from the direction intent
	Speed float64
	Color core.Color
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Ball is the single ball in play.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Per tick
	Radius float64
	Color  core.Color
	Trail  *Trail // Rendering feedback only; no physics role
}

// Brick is one cell of the brick grid.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Active   bool
	Color    core.Color
}

// Grid is the fixed rows × cols brick layout.
type Grid struct {
	Rows, Cols int
	Cells      [][]Brick // [row][col]
}

// NewGrid builds a fresh grid with every brick active.
// Colors cycle through the palette along the diagonals.
func NewGrid(cfg config.BricksConfig) Grid {
	g := Grid{
		Rows:  cfg.Rows,
		Cols:  cfg.Cols,
		Cells: make([][]Brick, cfg.Rows),
	}
	for r := range cfg.Rows {
		g.Cells[r] = make([]Brick, cfg.Cols)
		for c := range cfg.Cols {
			x := float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft
			y := float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop
			g.Cells[r][c] = Brick{
				Row:    r,
				Col:    c,
				Rect:   core.NewRect(x, y, cfg.Width, cfg.Height),
				Active: true,
				Color:  core.Color(cfg.Palette[(r+c)%len(cfg.Palette)]),
			}
		}
	}
	return g
}

// Remaining returns the number of active bricks.
func (g *Grid) Remaining() int {
	count := 0
	for _, row := range g.Cells {
		for _, b := range row {
			if b.Active {
				count++
			}
		}
	}
	return count
}

// Total returns the number of cells in the grid.
func (g *Grid) Total() int {
	return g.Rows * g.Cols
}

// World is the aggregate of all simulation entities.
// A single Game owns it; nothing else writes to it.
type World struct {
	Width, Height float64

	Paddle Paddle
	Ball   Ball
	Grid   Grid

	Score int
	Lives int

	cfg config.Config
}

// NewWorld creates a world in its post-reset state.
// The ball sits at its spawn point; call SpawnBall to give it a random direction.
func NewWorld(cfg config.Config) *World {
	w := &World{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		cfg:    cfg,
	}
	w.Ball = Ball{
		Radius: cfg.Ball.Radius,
		Color:  core.Color(cfg.Ball.Color),
		Trail:  NewTrail(cfg.Ball.TrailLength),
	}
	w.Reset()
	return w
}

// Reset restores score, lives, paddle, grid and ball to their initial values.
// Calling it repeatedly yields the same state.
func (w *World) Reset() {
	w.Score = 0
	w.Lives = w.cfg.Gameplay.Lives
	w.Grid = NewGrid(w.cfg.Bricks)

	w.Paddle = Paddle{
		X:     w.Width/2 - w.cfg.Paddle.Width/2,
		Y:     w.Height - w.cfg.Paddle.BottomOffset,
		W:     w.cfg.Paddle.Width,
		H:     w.cfg.Paddle.Height,
		Speed: w.cfg.Paddle.Speed,
		Color: core.Color(w.cfg.Paddle.Color),
	}

	w.Ball.Pos = w.spawnPoint()
	w.Ball.Vel = core.V(w.cfg.Ball.SpeedX, -w.cfg.Ball.SpeedY)
	w.Ball.Trail.Clear()
}

// SpawnBall puts the ball back at its spawn point, launching it upward with a
// random horizontal direction and an empty trail.
func (w *World) SpawnBall(rng *SimpleRNG) {
	w.Ball.Pos = w.spawnPoint()
	w.Ball.Vel = core.V(w.cfg.Ball.SpeedX*rng.Sign(), -w.cfg.Ball.SpeedY)
	w.Ball.Trail.Clear()
}

func (w *World) spawnPoint() core.Vec {
	return core.V(w.Width/2, w.Height-w.cfg.Ball.SpawnOffset)
}

// SetPaddleDirection sets the paddle velocity from a direction in {-1, 0, +1}.
// Larger magnitudes are clamped.
func (w *World) SetPaddleDirection(dir int) {
	w.Paddle.DX = float64(core.Clamp(dir, -1, 1)) * w.Paddle.Speed
}

// SetPaddleCenter moves the paddle so its center is at x, clamped to the field.
func (w *World) SetPaddleCenter(x float64) {
	w.Paddle.X = x - w.Paddle.W/2
	w.clampPaddle()
}

func (w *World) clampPaddle() {
	w.Paddle.X = core.ClampF(w.Paddle.X, 0, w.Width-w.Paddle.W)
}
