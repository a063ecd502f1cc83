package game

import (
	"math"

	"github.com/vovakirdan/neonbreaker/internal/core"
)

// PaddleView is the render view of the paddle.
type PaddleView struct {
	X, Y, W, H float64
	Color      core.Color
}

// BallView is the render view of the ball.
type BallView struct {
	X, Y   float64
	Radius float64
	Color  core.Color
	Trail  []core.Vec // Most recent first
}

// BrickView is the render view of one active brick.
type BrickView struct {
	Row, Col   int
	X, Y, W, H float64
	Color      core.Color
}

// ParticleView is the render view of one particle.
type ParticleView struct {
	X, Y  float64
	Alpha float64 // Remaining life fraction, for fading
	Color core.Color
}

// Snapshot is a detached copy of everything a renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Width  float64
	Height float64

	Paddle PaddleView
	Ball   BallView
	Bricks []BrickView // Active bricks only, row-major

	Particles      []ParticleView
	ParticleRadius float64

	Score           int
	Lives           int
	BricksRemaining int
	BricksTotal     int

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	bricks := make([]BrickView, 0, w.Grid.Total())
	for _, row := range w.Grid.Cells {
		for _, b := range row {
			if !b.Active {
				continue
			}
			bricks = append(bricks, BrickView{
				Row:   b.Row,
				Col:   b.Col,
				X:     b.Rect.X,
				Y:     b.Rect.Y,
				W:     b.Rect.W,
				H:     b.Rect.H,
				Color: b.Color,
			})
		}
	}

	particles := make([]ParticleView, len(g.particles.Particles))
	for i := range g.particles.Particles {
		p := &g.particles.Particles[i]
		particles[i] = ParticleView{
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			Alpha: p.Alpha(),
			Color: p.Color,
		}
	}

	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Width:  w.Width,
		Height: w.Height,
		Paddle: PaddleView{
			X:     w.Paddle.X,
			Y:     w.Paddle.Y,
			W:     w.Paddle.W,
			H:     w.Paddle.H,
			Color: w.Paddle.Color,
		},
		Ball: BallView{
			X:      w.Ball.Pos.X,
			Y:      w.Ball.Pos.Y,
			Radius: w.Ball.Radius,
			Color:  w.Ball.Color,
			Trail:  w.Ball.Trail.Points(),
		},
		Bricks:          bricks,
		Particles:       particles,
		ParticleRadius:  g.particles.Radius(),
		Score:           w.Score,
		Lives:           w.Lives,
		BricksRemaining: len(bricks),
		BricksTotal:     w.Grid.Total(),
		RNGState:        g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Particle order is not stable across removals, so only their count is mixed in.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Particles))  //#nosec G115 -- hash computation

	for _, p := range snap.Ball.Trail {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
	}

	for _, b := range snap.Bricks {
		h = h*31 + uint64(b.Row*64+b.Col) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
