package core

import (
	"testing"
	"time"
)

func TestCatchUpRunsWholeSteps(t *testing.T) {
	s := testServer()
	g := NewGameLoop(s, 20)

	tests := []struct {
		lag  time.Duration
		want time.Duration
	}{
		{lag: 10 * time.Millisecond, want: 10 * time.Millisecond},
		{lag: 50 * time.Millisecond, want: 0},
		{lag: 120 * time.Millisecond, want: 20 * time.Millisecond},
		{lag: 10 * time.Second, want: 0},
	}
	for _, tt := range tests {
		if got := g.catchUp(tt.lag); got != tt.want {
			t.Fatalf("catchUp(%v) = %v, want %v", tt.lag, got, tt.want)
		}
	}
}

func TestGameLoopStopIsIdempotent(t *testing.T) {
	g := NewGameLoop(testServer(), 50)
	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()

	g.Stop()
	g.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("loop did not stop")
	}
}
