package network

import "time"

// Config holds network and interpolation settings for a client session.
type Config struct {
	// Address is the WebSocket URL to dial.
	Address string

	// Timing
	ConnectTimeout time.Duration
	WriteTimeout   time.Duration

	// ReadLimit caps the size of a single inbound message in bytes.
	ReadLimit int64

	// Reconnect backoff
	MinWait    time.Duration
	MaxWait    time.Duration
	WaitFactor float64

	// InterpolationDelay is how far in the past the world is rendered.
	InterpolationDelay time.Duration

	// MaxBuffered caps the snapshots held per entity.
	MaxBuffered int
}

// DefaultConfig returns the settings the client ships with.
func DefaultConfig() *Config {
	return &Config{
		Address:            RemoteAddress,
		ConnectTimeout:     5 * time.Second,
		WriteTimeout:       time.Second,
		ReadLimit:          64 * 1024,
		MinWait:            100 * time.Millisecond,
		MaxWait:            2000 * time.Millisecond,
		WaitFactor:         1.25,
		InterpolationDelay: 100 * time.Millisecond,
		MaxBuffered:        64,
	}
}

// Endpoints for local development and everything else.
const (
	LocalAddress  = "ws://localhost:8081"
	RemoteAddress = "wss://beta.jnferner.com/socket"
)

// SelectAddress picks the endpoint for the current environment.
func SelectAddress(local bool) string {
	if local {
		return LocalAddress
	}
	return RemoteAddress
}
