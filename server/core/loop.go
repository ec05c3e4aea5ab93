package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop runs the server at a fixed update rate. Ticks that arrive late
// are caught up by running several updates before the next broadcast.
type GameLoop struct {
	server   *Server
	tickRate int
	step     time.Duration
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		step:     time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.step)
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	// Initial update
	g.server.Update()
	last := time.Now()
	var lag time.Duration

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case now := <-ticker.C:
			lag += now.Sub(last)
			last = now
			lag = g.catchUp(lag)
			g.server.Broadcast()
		}
	}
}

// catchUp runs one update per whole step in lag and returns the remainder.
// Lag is capped so a long stall does not replay seconds of simulation.
func (g *GameLoop) catchUp(lag time.Duration) time.Duration {
	if maxLag := 5 * g.step; lag > maxLag {
		lag = maxLag
	}
	for lag >= g.step {
		g.server.Update()
		lag -= g.step
	}
	return lag
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
