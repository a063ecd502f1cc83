package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - paddle left (held)
	ActionRight         // Right arrow, D - paddle right (held)
	ActionLaunch        // Space - start from the title screen, restart after game over or win
	ActionHelp          // ? - toggle the help line
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// HeldInput tracks "pressed" flags for actions that are held rather than tapped.
//
// Terminals report key presses but never key releases, so a flag stays set for
// holdTicks direction-timer ticks after its last press and is refreshed by the
// terminal's key auto-repeat.
type HeldInput struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldInput creates a tracker that keeps a flag alive for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldInput{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press marks an action as held, refreshing its expiry.
func (h *HeldInput) Press(a Action) {
	h.remaining[a] = h.holdTicks
}

// Release clears an action immediately.
func (h *HeldInput) Release(a Action) {
	delete(h.remaining, a)
}

// Held returns true if the action is currently considered pressed.
func (h *HeldInput) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Tick ages every held flag by one tick and drops the expired ones.
func (h *HeldInput) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Direction returns -1, 0 or +1 from the Left/Right flags.
// Right wins when both are held, matching the order the flags are applied.
func (h *HeldInput) Direction() int {
	dir := 0
	if h.Held(ActionLeft) {
		dir = -1
	}
	if h.Held(ActionRight) {
		dir = 1
	}
	return dir
}

// Clear drops every held flag.
func (h *HeldInput) Clear() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}
