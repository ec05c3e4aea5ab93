package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/shootr/shared/protocol"
	"github.com/coder/websocket"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateOpen
	StateClosing
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

var ErrAlreadyStarted = errors.New("client already started")

// Client manages the WebSocket link to the game server. It reconnects
// forever with exponential backoff until Close is called.
// All shared fields are protected by mu; the backoff is owned by the run loop.
type Client struct {
	config   *Config
	listener Listener
	backoff  *Backoff

	mu     sync.RWMutex
	state  ClientState
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates a disconnected client. A nil listener is allowed.
func NewClient(cfg *Config, listener Listener) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if listener == nil {
		listener = nopListener{}
	}
	return &Client{
		config:   cfg,
		listener: listener,
		backoff:  NewBackoff(cfg.MinWait, cfg.MaxWait, cfg.WaitFactor),
		state:    StateDisconnected,
	}
}

// Connect starts dialing address in a background goroutine and keeps the
// link up until ctx is cancelled or Close is called.
func (c *Client) Connect(ctx context.Context, address string) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go c.run(ctx, address, done)
	return nil
}

// Close stops the retry loop and closes the link. It blocks until the loop
// has exited.
func (c *Client) Close() error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	if cancel == nil {
		c.mu.Unlock()
		return nil
	}
	c.cancel = nil
	c.state = StateClosing
	c.mu.Unlock()

	cancel()
	<-done

	c.mu.Lock()
	c.state = StateDisconnected
	c.mu.Unlock()
	return nil
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Send transmits payload as a text message if the link is open. Otherwise
// the payload is dropped. Returns whether it was written.
func (c *Client) Send(payload string) bool {
	c.mu.RLock()
	conn, state := c.conn, c.state
	c.mu.RUnlock()

	if state != StateOpen || conn == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.config.WriteTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, []byte(payload)); err != nil {
		log.Printf("[client] send failed: %v", err)
		return false
	}
	return true
}

func (c *Client) run(ctx context.Context, address string, done chan struct{}) {
	defer close(done)

	for {
		err := c.connectOnce(ctx, address)

		c.mu.Lock()
		conn := c.conn
		c.conn = nil
		if c.state != StateClosing {
			c.state = StateDisconnected
		}
		c.mu.Unlock()
		if conn != nil {
			_ = conn.CloseNow()
		}

		if ctx.Err() != nil {
			return
		}
		c.listener.OnClose(err)

		wait := c.backoff.Wait()
		log.Printf("[client] reconnecting in %v", wait)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		c.backoff.Increase()
	}
}

// connectOnce dials and reads until the link fails. It always returns a
// non-nil error describing why the link ended.
func (c *Client) connectOnce(ctx context.Context, address string) error {
	c.mu.Lock()
	c.state = StateConnecting
	c.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
	conn, _, err := websocket.Dial(dialCtx, address, nil)
	cancel()
	if err != nil {
		err = fmt.Errorf("dial %s: %w", address, err)
		if ctx.Err() == nil {
			c.transportError(err)
		}
		return err
	}
	conn.SetReadLimit(c.config.ReadLimit)

	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		_ = conn.CloseNow()
		return ctx.Err()
	}
	c.conn = conn
	c.state = StateOpen
	c.mu.Unlock()

	c.backoff.Reset()
	log.Printf("[client] connected to %s", address)
	c.listener.OnOpen()

	return c.readLoop(ctx, conn)
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if status := websocket.CloseStatus(err); status != -1 {
				log.Printf("[client] closed by server: %v", status)
				return err
			}
			c.transportError(err)
			return err
		}

		snap, err := protocol.DecodeSnapshot(data)
		if err != nil {
			log.Printf("[client] dropping malformed message: %v", err)
			continue
		}
		c.listener.OnMessage(snap)
	}
}

// transportError logs err and force-closes the current socket, which sends
// the run loop down the reconnect path.
func (c *Client) transportError(err error) {
	log.Printf("[client] socket error: %v, closing socket", err)
	c.listener.OnError(err)

	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn != nil {
		_ = conn.CloseNow()
	}
}
