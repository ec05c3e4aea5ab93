package network

import (
	"sync"
	"time"
)

// Backoff is the reconnect delay policy: the current wait is used for the
// next attempt and then grown by Factor, never beyond Max. Only Reset lowers
// it again. The client's run loop is the only writer; Wait may be read from
// anywhere.
type Backoff struct {
	Min    time.Duration
	Max    time.Duration
	Factor float64

	mu   sync.Mutex
	wait time.Duration
}

// NewBackoff creates a backoff starting at min.
func NewBackoff(min, max time.Duration, factor float64) *Backoff {
	if max < min {
		max = min
	}
	if factor < 1 {
		factor = 1
	}
	return &Backoff{Min: min, Max: max, Factor: factor, wait: min}
}

// Wait returns the delay before the next reconnect attempt.
func (b *Backoff) Wait() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wait
}

// Increase grows the wait by Factor, capped at Max.
func (b *Backoff) Increase() {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := time.Duration(float64(b.wait) * b.Factor)
	if next > b.Max {
		next = b.Max
	}
	b.wait = next
}

// Reset returns the wait to the floor. Called after a successful open.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wait = b.Min
}
