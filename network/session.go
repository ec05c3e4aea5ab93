package network

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/shootr/shared/messages"
	"github.com/automoto/shootr/shared/netcomponents"
)

// Presenter is the rendering side of a session. Indicator methods may be
// called from the network goroutine; PositionEntity and RemoveEntity are only
// called from Tick.
type Presenter interface {
	ShowConnectingIndicator()
	HideConnectingIndicator()
	ShowReconnectingIndicator()
	HideReconnectingIndicator()
	PositionEntity(id string, x, y float64)
	RemoveEntity(id string)
}

// Phase is the render gate of a session.
type Phase int

const (
	// PhaseBuffering means no entity has enough history to interpolate.
	PhaseBuffering Phase = iota
	// PhasePlaying means at least one entity was interpolated last tick.
	PhasePlaying
)

func (p Phase) String() string {
	if p == PhasePlaying {
		return "playing"
	}
	return "buffering"
}

// EntityTimeout is how long an entity may go without snapshots while the
// link is open before it is removed.
const EntityTimeout = 2 * time.Second

// Session ties a Client, the per-entity snapshot buffers and a Presenter
// together. It is the Listener of its own client.
type Session struct {
	config    *Config
	client    *Client
	store     *SnapshotStore
	interp    *Interpolator
	presenter Presenter

	mu           sync.Mutex
	phase        Phase
	reconnecting bool
	lastError    error
}

// NewSession creates a session for cfg.Address. Nothing is dialed until Start.
func NewSession(cfg *Config, presenter Presenter) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Session{
		config:    cfg,
		store:     NewSnapshotStore(cfg.MaxBuffered),
		interp:    NewInterpolator(cfg.InterpolationDelay),
		presenter: presenter,
		phase:     PhaseBuffering,
	}
	s.client = NewClient(cfg, s)
	return s
}

// Start shows the connecting indicator and begins connecting.
func (s *Session) Start(ctx context.Context) error {
	s.presenter.ShowConnectingIndicator()
	return s.client.Connect(ctx, s.config.Address)
}

// Shutdown closes the link and stops reconnecting.
func (s *Session) Shutdown() error {
	return s.client.Close()
}

// Send forwards a key event to the server. Dropped while the link is down.
func (s *Session) Send(ev messages.KeyEvent) bool {
	return s.client.Send(ev.String())
}

// Tick runs one render step: every entity with enough history is
// interpolated and positioned. Returns the number of entities positioned.
func (s *Session) Tick() int {
	renderTime := s.interp.RenderTime()

	n := s.store.Step(renderTime, func(state netcomponents.Snapshot) {
		s.presenter.PositionEntity(state.ID, state.Pos.X, state.Pos.Y)
	})

	if s.client.State() == StateOpen {
		for _, id := range s.store.Expire(renderTime - EntityTimeout.Milliseconds()) {
			s.presenter.RemoveEntity(id)
		}
	}

	switch {
	case n > 0:
		s.setPhase(PhasePlaying)
	case s.store.Ready(renderTime) == 0:
		s.setPhase(PhaseBuffering)
	}
	return n
}

// setPhase moves the render gate. Ticks between two snapshots interpolate
// nothing but keep the phase; it only falls back to buffering once no entity
// has usable history left.
func (s *Session) setPhase(phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if phase == s.phase {
		return
	}
	s.phase = phase
	if phase == PhasePlaying {
		s.presenter.HideConnectingIndicator()
	} else {
		s.presenter.ShowConnectingIndicator()
	}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) State() ClientState {
	return s.client.State()
}

// Entities returns the number of entities with buffered snapshots.
func (s *Session) Entities() int {
	return s.store.Len()
}

// OnOpen implements Listener.
func (s *Session) OnOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = nil
	if s.reconnecting {
		s.reconnecting = false
		s.presenter.HideReconnectingIndicator()
	}
}

// OnMessage implements Listener.
func (s *Session) OnMessage(snap netcomponents.Snapshot) {
	if !s.store.Push(snap) {
		log.Printf("[session] dropping out-of-order snapshot for %q at %d", snap.ID, snap.Timestamp)
	}
}

// OnClose implements Listener.
func (s *Session) OnClose(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.reconnecting {
		s.reconnecting = true
		s.presenter.ShowReconnectingIndicator()
	}
}

// OnError implements Listener. The client has already logged err.
func (s *Session) OnError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
}

// LastError returns the most recent dial or transport error.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
