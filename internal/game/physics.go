package game

import (
	"math"

	"github.com/vovakirdan/neonbreaker/internal/core"
)

// resolve runs one tick of physics. Order matters and follows the frame:
// paddle, trail, ball, walls, paddle hit, miss, bricks.
func (g *Game) resolve() {
	g.movePaddle()
	g.moveBall()
	g.checkWalls()
	g.checkPaddle()
	g.checkMiss()
	if g.phase != PhaseRunning {
		return
	}
	g.checkBricks()
}

// movePaddle integrates the paddle velocity and clamps it to the field.
func (g *Game) movePaddle() {
	w := g.world
	w.Paddle.X += w.Paddle.DX
	w.clampPaddle()
}

// moveBall records the current position in the trail, then integrates.
func (g *Game) moveBall() {
	b := &g.world.Ball
	b.Trail.Push(b.Pos)
	b.Pos = b.Pos.Add(b.Vel)
}

// checkWalls reflects the ball off the side and top walls.
// After reflecting, the ball is nudged by its new velocity so it does not
// re-trigger on the same wall next tick. The bottom is open.
func (g *Game) checkWalls() {
	w := g.world
	b := &w.Ball

	if b.Pos.X-b.Radius < 0 || b.Pos.X+b.Radius > w.Width {
		b.Vel.X = -b.Vel.X
		b.Pos.X += b.Vel.X
		g.burst(EventWallBounce, b.Color)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y += b.Vel.Y
		g.burst(EventWallBounce, b.Color)
	}
}

// checkPaddle bounces the ball off the paddle's top edge.
//
// The outgoing horizontal speed depends on where the ball struck: the offset
// from the paddle center, normalized to [-1, 1], times the spin coefficient.
// Vertical speed is forced upward so the ball can never be pushed back down
// into the paddle.
func (g *Game) checkPaddle() {
	w := g.world
	b := &w.Ball
	p := &w.Paddle
	r := p.Rect()

	if b.Pos.Y+b.Radius <= r.Y {
		return
	}
	if b.Pos.X <= r.X || b.Pos.X >= r.Right() {
		return
	}
	// The center must still be above the paddle's top edge; a ball that has
	// already sunk past it is a miss in progress, not a hit.
	if !g.cfg.Physics.LegacyPaddleHit && b.Pos.Y >= r.Y {
		return
	}

	b.Vel.Y = -math.Abs(b.Vel.Y)
	offset := (b.Pos.X - p.CenterX()) / (p.W / 2)
	b.Vel.X = offset * g.cfg.Gameplay.Spin
	g.burst(EventPaddleHit, p.Color)
}

// checkMiss handles the ball dropping out of the bottom of the field.
func (g *Game) checkMiss() {
	w := g.world
	b := &w.Ball

	if b.Pos.Y-b.Radius <= w.Height {
		return
	}

	if w.Lives > 0 {
		w.Lives--
	}
	g.emit(Event{Kind: EventLifeLost, Pos: b.Pos})

	if w.Lives > 0 {
		w.SpawnBall(g.rng)
		return
	}
	g.fire(TriggerLivesExhausted)
}

// checkBricks destroys every active brick the ball overlaps.
//
// Each overlapping brick is handled on its own, so one tick can destroy
// several bricks and flip the vertical velocity once per brick.
func (g *Game) checkBricks() {
	w := g.world
	b := &w.Ball

	for r := range w.Grid.Cells {
		for c := range w.Grid.Cells[r] {
			brick := &w.Grid.Cells[r][c]
			if !brick.Active {
				continue
			}
			rect := brick.Rect
			if b.Pos.X <= rect.X || b.Pos.X >= rect.Right() {
				continue
			}
			if b.Pos.Y-b.Radius >= rect.Bottom() || b.Pos.Y+b.Radius <= rect.Y {
				continue
			}

			b.Vel.Y = -b.Vel.Y
			brick.Active = false
			w.Score += g.cfg.Gameplay.BrickPoints
			g.particles.Spawn(b.Pos, brick.Color)
			g.emit(Event{Kind: EventBrickDestroyed, Pos: b.Pos, Row: r, Col: c})

			if w.Grid.Remaining() == 0 {
				g.fire(TriggerBricksCleared)
			}
		}
	}
}

// burst spawns particles at the ball and records a collision event.
func (g *Game) burst(kind EventKind, color core.Color) {
	pos := g.world.Ball.Pos
	g.particles.Spawn(pos, color)
	g.emit(Event{Kind: kind, Pos: pos})
}
