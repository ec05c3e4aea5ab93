// Package protocol implements the wire encoding shared by the client and the
// demo server. Server→client messages are JSON snapshots, one entity per
// message; client→server messages are plain-text key events (see messages).
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/automoto/shootr/shared/netcomponents"
)

var (
	ErrEmptyPayload     = errors.New("empty snapshot payload")
	ErrMissingTimestamp = errors.New("snapshot has no timestamp")
	ErrMissingPosition  = errors.New("snapshot has no pos")
	ErrInvalidTimestamp = errors.New("snapshot timestamp is not an integer millisecond")
)

// wireSnapshot mirrors netcomponents.Snapshot with optional fields so missing
// keys can be told apart from zero values.
type wireSnapshot struct {
	ID        string              `json:"id,omitempty"`
	Timestamp *float64            `json:"timestamp"`
	Pos       *netcomponents.Vec2 `json:"pos"`
	Vel       *netcomponents.Vec2 `json:"vel"`
}

// DecodeSnapshot parses one inbound message. Timestamps may use any JSON
// number notation but must be whole milliseconds within int64 range. A
// missing vel decodes as zero velocity.
func DecodeSnapshot(b []byte) (netcomponents.Snapshot, error) {
	if len(b) == 0 {
		return netcomponents.Snapshot{}, ErrEmptyPayload
	}
	var w wireSnapshot
	if err := json.Unmarshal(b, &w); err != nil {
		return netcomponents.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if w.Timestamp == nil {
		return netcomponents.Snapshot{}, ErrMissingTimestamp
	}
	if ts := *w.Timestamp; math.Trunc(ts) != ts || ts < -(1<<63) || ts >= 1<<63 {
		return netcomponents.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, ts)
	}
	if w.Pos == nil {
		return netcomponents.Snapshot{}, ErrMissingPosition
	}

	s := netcomponents.Snapshot{
		ID:        w.ID,
		Timestamp: int64(*w.Timestamp),
		Pos:       *w.Pos,
	}
	if w.Vel != nil {
		s.Vel = *w.Vel
	}
	return s, nil
}

// EncodeSnapshot serializes a snapshot for sending.
func EncodeSnapshot(s netcomponents.Snapshot) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}
