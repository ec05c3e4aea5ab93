package messages

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput is returned when a client message is not a key event.
var ErrMalformedInput = errors.New("malformed input message")

// KeyAction is the edge of a key event.
type KeyAction string

const (
	KeyDown KeyAction = "keydown"
	KeyUp   KeyAction = "keyup"
)

// Key names understood by the server. They follow the DOM KeyboardEvent.key
// naming so browser and desktop clients send the same strings.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// KeyEvent is sent from client to server as plain text "<action>:<key>".
type KeyEvent struct {
	Action KeyAction
	Key    string
}

// NewKeyDown creates a key press event.
func NewKeyDown(key string) KeyEvent {
	return KeyEvent{Action: KeyDown, Key: key}
}

// NewKeyUp creates a key release event.
func NewKeyUp(key string) KeyEvent {
	return KeyEvent{Action: KeyUp, Key: key}
}

// Pressed reports whether the event is a key press.
func (e KeyEvent) Pressed() bool {
	return e.Action == KeyDown
}

func (e KeyEvent) String() string {
	return string(e.Action) + ":" + e.Key
}

// ParseKeyEvent parses "keydown:<key>" or "keyup:<key>". The key may itself
// contain ':' (e.g. "keydown::").
func ParseKeyEvent(msg string) (KeyEvent, error) {
	action, key, ok := strings.Cut(msg, ":")
	if !ok || key == "" {
		return KeyEvent{}, fmt.Errorf("%w: %q", ErrMalformedInput, msg)
	}
	switch KeyAction(action) {
	case KeyDown, KeyUp:
		return KeyEvent{Action: KeyAction(action), Key: key}, nil
	default:
		return KeyEvent{}, fmt.Errorf("%w: unknown action %q", ErrMalformedInput, action)
	}
}
