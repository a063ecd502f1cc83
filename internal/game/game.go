package game

import (
	"github.com/vovakirdan/neonbreaker/internal/config"
)

// StepResult summarizes one tick for the driver.
type StepResult struct {
	Tick   uint64
	Phase  Phase
	Score  int
	Lives  int
	Events []Event // Everything that happened during the tick, in order
}

// Game owns the world, the particle system and the state machine.
// It is not safe for concurrent use; the driver calls every method from a
// single goroutine.
type Game struct {
	cfg  config.Config
	seed int64
	rng  *SimpleRNG

	world     *World
	particles *ParticleSystem

	phase   Phase
	intents IntentQueue
	tick    uint64
	events  []Event
}

// New creates a game on the title screen.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// Reset rebuilds the game from scratch: fresh world, no particles, no queued
// intents, title screen, RNG reseeded. Two resets with the same seed produce
// identical games.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = NewSimpleRNG(seed)
	g.world = NewWorld(g.cfg)
	g.particles = NewParticleSystem(g.cfg.Particles, g.rng)
	g.phase = PhaseStart
	g.intents = IntentQueue{}
	g.tick = 0
	g.events = g.events[:0]
}

// Step advances the game by one tick.
//
// Queued intents are applied first. Physics only runs while the phase is
// Running; particles age in every phase so bursts finish fading behind the
// overlays.
func (g *Game) Step() StepResult {
	g.tick++
	g.events = g.events[:0]

	for _, in := range g.intents.Drain() {
		g.apply(in)
	}

	if g.phase == PhaseRunning {
		g.resolve()
	}

	g.particles.Update()

	events := make([]Event, len(g.events))
	copy(events, g.events)

	return StepResult{
		Tick:   g.tick,
		Phase:  g.phase,
		Score:  g.world.Score,
		Lives:  g.world.Lives,
		Events: events,
	}
}

// SetPaddleDirection queues a paddle direction change. dir is clamped to
// {-1, 0, +1}.
func (g *Game) SetPaddleDirection(dir int) {
	g.intents.Push(Intent{Kind: IntentDirection, Dir: dir})
}

// SetPaddleAbsoluteX queues a jump of the paddle center to x (pointer drag).
// The target is clamped to the field. Ignored outside the Running phase.
func (g *Game) SetPaddleAbsoluteX(x float64) {
	g.intents.Push(Intent{Kind: IntentAbsoluteX, X: x})
}

// RequestStart queues the start intent. Only honored on the title screen.
func (g *Game) RequestStart() {
	g.intents.Push(Intent{Kind: IntentStart})
}

// RequestRestart queues the restart intent. Only honored after a win or a
// game over.
func (g *Game) RequestRestart() {
	g.intents.Push(Intent{Kind: IntentRestart})
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// World returns the live world. Callers must treat it as read-only.
func (g *Game) World() *World {
	return g.world
}

// Particles returns the live particle system. Callers must treat it as
// read-only.
func (g *Game) Particles() *ParticleSystem {
	return g.particles
}

// Tick returns the number of ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Seed returns the seed of the last reset.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) apply(in Intent) {
	switch in.Kind {
	case IntentDirection:
		g.world.SetPaddleDirection(in.Dir)
	case IntentAbsoluteX:
		if g.phase == PhaseRunning {
			g.world.SetPaddleCenter(in.X)
		}
	case IntentStart:
		g.fire(TriggerStart)
	case IntentRestart:
		g.fire(TriggerRestart)
	}
}

// fire runs a trigger through the transition table and performs the entry
// action of the new phase. Rejected triggers do nothing.
func (g *Game) fire(t Trigger) {
	to, ok := nextPhase(g.phase, t)
	if !ok {
		return
	}

	switch t {
	case TriggerStart:
		g.world.SpawnBall(g.rng)
	case TriggerRestart:
		g.world.Reset()
		g.world.SpawnBall(g.rng)
	case TriggerLivesExhausted, TriggerBricksCleared:
	}

	from := g.phase
	g.phase = to
	g.emit(Event{Kind: EventPhaseChanged, From: from, To: to, Trigger: t})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
