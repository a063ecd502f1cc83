package game

import "github.com/vovakirdan/neonbreaker/internal/core"

// Trail is a bounded history of positions, most recent first.
// It is backed by a fixed ring so pushing never allocates.
type Trail struct {
	buf   []core.Vec
	start int // Index of the most recent entry
	n     int
}

// NewTrail creates a trail that remembers at most capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{buf: make([]core.Vec, capacity)}
}

// Push records p as the most recent position, dropping the oldest when full.
func (t *Trail) Push(p core.Vec) {
	c := len(t.buf)
	if c == 0 {
		return
	}
	t.start = (t.start - 1 + c) % c
	t.buf[t.start] = p
	if t.n < c {
		t.n++
	}
}

// Len returns the number of remembered positions.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the maximum trail length.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// At returns the i-th most recent position (0 = newest).
func (t *Trail) At(i int) core.Vec {
	if i < 0 || i >= t.n {
		return core.Vec{}
	}
	return t.buf[(t.start+i)%len(t.buf)]
}

// Points returns a copy of the trail, most recent first.
func (t *Trail) Points() []core.Vec {
	out := make([]core.Vec, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Clear forgets every position.
func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}
