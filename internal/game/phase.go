package game

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen, waiting for the start intent
	PhaseRunning               // Ball in play
	PhaseGameOver              // Lives exhausted
	PhaseWin                   // Every brick destroyed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a game.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}

// Trigger is something that can move the state machine.
type Trigger int

const (
	TriggerStart          Trigger = iota // Start intent
	TriggerRestart                       // Restart intent
	TriggerLivesExhausted                // Last life lost on a miss
	TriggerBricksCleared                 // Last brick destroyed
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerRestart:
		return "restart"
	case TriggerLivesExhausted:
		return "lives-exhausted"
	case TriggerBricksCleared:
		return "bricks-cleared"
	default:
		return "unknown"
	}
}

// nextPhase is the transition table. It returns the target phase and whether
// the trigger is accepted in the current phase; rejected triggers are no-ops.
func nextPhase(from Phase, t Trigger) (Phase, bool) {
	switch from {
	case PhaseStart:
		switch t {
		case TriggerStart:
			return PhaseRunning, true
		case TriggerRestart, TriggerLivesExhausted, TriggerBricksCleared:
			return from, false
		}
	case PhaseRunning:
		switch t {
		case TriggerLivesExhausted:
			return PhaseGameOver, true
		case TriggerBricksCleared:
			return PhaseWin, true
		case TriggerStart, TriggerRestart:
			return from, false
		}
	case PhaseGameOver, PhaseWin:
		switch t {
		case TriggerRestart:
			return PhaseRunning, true
		case TriggerStart, TriggerLivesExhausted, TriggerBricksCleared:
			return from, false
		}
	}
	return from, false
}
