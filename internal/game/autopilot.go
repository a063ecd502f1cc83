package game

// Autopilot steers the paddle toward the ball using direction intents, the
// same way a player holding arrow keys would. It is used by headless runs.
type Autopilot struct {
	rng      *SimpleRNG
	aim      float64 // Offset from the ball x that the paddle center chases
	maxAim   float64
	deadzone float64
}

// NewAutopilot creates an autopilot. maxAim bounds the random aim offset so
// the ball does not settle into a vertical loop.
func NewAutopilot(seed int64, maxAim float64) *Autopilot {
	return &Autopilot{
		rng:      NewSimpleRNG(seed),
		maxAim:   maxAim,
		deadzone: 2,
	}
}

// Steer queues the intents for the next tick: start on the title screen,
// nothing once the game has ended, otherwise a direction toward the aim point.
func (a *Autopilot) Steer(g *Game, last StepResult) {
	switch g.Phase() {
	case PhaseStart:
		g.RequestStart()
		return
	case PhaseGameOver, PhaseWin:
		return
	case PhaseRunning:
	}

	for _, e := range last.Events {
		if e.Kind == EventPaddleHit || e.Kind == EventLifeLost {
			a.aim = (a.rng.Float64()*2 - 1) * a.maxAim
		}
	}

	w := g.World()
	target := w.Ball.Pos.X + a.aim
	diff := target - w.Paddle.CenterX()

	switch {
	case diff > a.deadzone:
		g.SetPaddleDirection(1)
	case diff < -a.deadzone:
		g.SetPaddleDirection(-1)
	default:
		g.SetPaddleDirection(0)
	}
}

// Aim returns the current aim offset.
func (a *Autopilot) Aim() float64 {
	return a.aim
}
