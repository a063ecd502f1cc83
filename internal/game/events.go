package game

import "github.com/vovakirdan/neonbreaker/internal/core"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventBrickDestroyed
	EventLifeLost
	EventPhaseChanged
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickDestroyed:
		return "brick-destroyed"
	case EventLifeLost:
		return "life-lost"
	case EventPhaseChanged:
		return "phase-changed"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform layer to log or react to.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind
	Pos  core.Vec // Where a collision happened

	Row, Col int // EventBrickDestroyed

	From, To Phase   // EventPhaseChanged
	Trigger  Trigger // EventPhaseChanged
}
