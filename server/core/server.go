package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/shootr/shared/messages"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/automoto/shootr/shared/protocol"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var upgrader = websocket.Upgrader{
	// Browser and desktop clients connect from anywhere.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server runs the authoritative simulation and streams snapshots to every
// connected client. The world is only touched by the game loop goroutine;
// connection handlers queue their changes under mu.
type Server struct {
	config Config
	world  donburi.World
	space  *resolv.Space
	loop   *GameLoop
	now    func() time.Time

	// Owned by the game loop
	entities map[string]donburi.Entity
	ballID   string

	mu        sync.Mutex
	peers     map[string]Conn
	toSpawn   []string
	toDespawn []string
	inputs    map[string][]messages.KeyEvent
}

// NewServer creates a server with one ball in the arena.
func NewServer(cfg Config) *Server {
	s := &Server{
		config:   cfg,
		world:    donburi.NewWorld(),
		space:    newArena(cfg.WorldWidth, cfg.WorldHeight),
		now:      time.Now,
		entities: make(map[string]donburi.Entity),
		peers:    make(map[string]Conn),
		inputs:   make(map[string][]messages.KeyEvent),
	}
	s.loop = NewGameLoop(s, cfg.UpdatesPerSec)

	s.ballID = uuid.NewString()
	s.spawn(s.ballID, ActorBall, cfg.WorldWidth/2, cfg.WorldHeight/2, 4, 3)
	return s
}

// Handler returns the HTTP routes: the WebSocket endpoint at / and /socket,
// and a health check.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprintf(w, "ok %d players\n", s.PlayerCount())
	})
	r.Get("/", s.serveSocket)
	r.Get("/socket", s.serveSocket)
	return r
}

// ListenAndServe runs the game loop and the HTTP server until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	go s.loop.Run()
	defer s.loop.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("[server] listening on :%d", s.config.Port)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.closePeers()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) serveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[server] upgrade: %v", err)
		return
	}

	peer := newWSPeer(conn)
	go peer.writePump()

	id := s.Connect(peer)
	err = peer.readPump(func(msg string) { s.HandleMessage(id, msg) })
	s.Disconnect(id)
	_ = peer.Close()

	if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Printf("[server] client %s: %v", id, err)
	}
}

// Connect registers a client and queues its player for spawning.
func (s *Server) Connect(conn Conn) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.peers[id] = conn
	s.toSpawn = append(s.toSpawn, id)
	s.mu.Unlock()

	log.Printf("[server] client %s: connected", id)
	return id
}

// Disconnect forgets a client and queues its player for removal.
func (s *Server) Disconnect(id string) {
	s.mu.Lock()
	_, ok := s.peers[id]
	delete(s.peers, id)
	delete(s.inputs, id)
	if ok {
		s.toDespawn = append(s.toDespawn, id)
	}
	s.mu.Unlock()

	if ok {
		log.Printf("[server] client %s: disconnected", id)
	}
}

// HandleMessage queues a key event from a client. Anything else is logged
// and ignored.
func (s *Server) HandleMessage(id, msg string) {
	ev, err := messages.ParseKeyEvent(msg)
	if err != nil {
		log.Printf("[server] client %s: sent invalid message: %v", id, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.peers[id]; !ok {
		return
	}
	s.inputs[id] = append(s.inputs[id], ev)
}

// Update runs one fixed simulation step: pending connections are applied,
// queued inputs are consumed, then physics runs.
func (s *Server) Update() {
	s.registerConnections()
	s.applyInputs()
	s.updatePhysics()
}

// Broadcast sends one snapshot per entity to every client.
func (s *Server) Broadcast() {
	ts := s.now().UnixMilli()

	var payloads [][]byte
	netcomponents.NetEntity.Each(s.world, func(entry *donburi.Entry) {
		pos := netcomponents.NetPosition.Get(entry)
		vel := netcomponents.NetVelocity.Get(entry)
		b, err := protocol.EncodeSnapshot(netcomponents.Snapshot{
			ID:        netcomponents.NetEntity.Get(entry).ID,
			Timestamp: ts,
			Pos:       netcomponents.Vec2{X: pos.X, Y: pos.Y},
			Vel:       netcomponents.Vec2{X: vel.SpeedX, Y: vel.SpeedY},
		})
		if err != nil {
			log.Printf("[server] %v", err)
			return
		}
		payloads = append(payloads, b)
	})

	s.mu.Lock()
	peers := make(map[string]Conn, len(s.peers))
	for id, c := range s.peers {
		peers[id] = c
	}
	s.mu.Unlock()

	for id, c := range peers {
		for _, b := range payloads {
			if err := c.Send(b); err != nil {
				log.Printf("[server] client %s: dropping snapshot: %v", id, err)
				break
			}
		}
	}
}

// PlayerCount returns the number of connected clients.
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.peers)
}

func (s *Server) registerConnections() {
	s.mu.Lock()
	spawn, despawn := s.toSpawn, s.toDespawn
	s.toSpawn, s.toDespawn = nil, nil
	s.mu.Unlock()

	for i, id := range spawn {
		// Stagger players down the left side of the arena.
		y := s.config.WorldHeight/2 + float64((len(s.entities)+i)%5-2)*playerSize*2
		s.spawn(id, ActorPlayer, s.config.WorldWidth/8, y, 0, 0)
	}
	for _, id := range despawn {
		s.despawn(id)
	}
}

func (s *Server) applyInputs() {
	s.mu.Lock()
	inputs := s.inputs
	s.inputs = make(map[string][]messages.KeyEvent, len(inputs))
	s.mu.Unlock()

	for id, events := range inputs {
		entity, ok := s.entities[id]
		if !ok || !s.world.Valid(entity) {
			continue
		}
		acc := netcomponents.NetAcceleration.Get(s.world.Entry(entity))
		for _, ev := range events {
			applyKey(acc, ev)
		}
	}
}

func (s *Server) closePeers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.peers {
		_ = c.Close()
	}
}

// entry returns the live entry for an entity id. Only for the game loop and
// tests.
func (s *Server) entry(id string) (*donburi.Entry, bool) {
	entity, ok := s.entities[id]
	if !ok || !s.world.Valid(entity) {
		return nil, false
	}
	return s.world.Entry(entity), true
}
