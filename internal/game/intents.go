package game

// IntentKind identifies a request from the input adapter.
type IntentKind int

const (
	IntentDirection IntentKind = iota // Dir in {-1, 0, +1}
	IntentAbsoluteX                   // X is the desired paddle center
	IntentStart
	IntentRestart
)

// Intent is a discrete request queued between ticks.
type Intent struct {
	Kind IntentKind
	Dir  int
	X    float64
}

// IntentQueue collects intents until the next tick drains them in arrival order.
// The driver and the simulation share one goroutine, so no locking is needed.
type IntentQueue struct {
	pending []Intent
}

// Push appends an intent.
func (q *IntentQueue) Push(in Intent) {
	q.pending = append(q.pending, in)
}

// Drain returns all queued intents and empties the queue.
// The returned slice is only valid until the next Push.
func (q *IntentQueue) Drain() []Intent {
	out := q.pending
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	return len(q.pending)
}
