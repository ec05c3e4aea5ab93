package network

import (
	"sync"

	"github.com/automoto/shootr/shared/netcomponents"
)

// SnapshotStore keeps one SnapshotBuffer per entity id.
type SnapshotStore struct {
	mu       sync.RWMutex
	buffers  map[string]*SnapshotBuffer
	capacity int
}

// NewSnapshotStore creates a store whose buffers hold at most capacity
// snapshots each.
func NewSnapshotStore(capacity int) *SnapshotStore {
	return &SnapshotStore{
		buffers:  make(map[string]*SnapshotBuffer),
		capacity: capacity,
	}
}

// Push routes a snapshot to its entity's buffer, creating it on first sight.
func (s *SnapshotStore) Push(snap netcomponents.Snapshot) bool {
	s.mu.RLock()
	buf, ok := s.buffers[snap.ID]
	s.mu.RUnlock()

	if !ok {
		s.mu.Lock()
		if buf, ok = s.buffers[snap.ID]; !ok {
			buf = NewSnapshotBuffer(s.capacity)
			s.buffers[snap.ID] = buf
		}
		s.mu.Unlock()
	}
	return buf.Push(snap)
}

// Buffer returns the buffer of one entity.
func (s *SnapshotStore) Buffer(id string) (*SnapshotBuffer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	buf, ok := s.buffers[id]
	return buf, ok
}

// Len returns the number of tracked entities.
func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buffers)
}

// Step advances every buffer to renderTime and calls fn with each entity
// that could be interpolated. It returns how many were.
func (s *SnapshotStore) Step(renderTime int64, fn func(netcomponents.Snapshot)) int {
	s.mu.RLock()
	buffers := make([]*SnapshotBuffer, 0, len(s.buffers))
	for _, buf := range s.buffers {
		buffers = append(buffers, buf)
	}
	s.mu.RUnlock()

	n := 0
	for _, buf := range buffers {
		if state, ok := buf.Step(renderTime); ok {
			fn(state)
			n++
		}
	}
	return n
}

// Ready returns how many entities can bracket renderTime now or later.
func (s *SnapshotStore) Ready(renderTime int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, buf := range s.buffers {
		if buf.Ready(renderTime) {
			n++
		}
	}
	return n
}

// Expire drops entities whose newest snapshot is older than cutoff and
// returns their ids.
func (s *SnapshotStore) Expire(cutoff int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []string
	for id, buf := range s.buffers {
		if newest, ok := buf.newest(); !ok || newest < cutoff {
			delete(s.buffers, id)
			expired = append(expired, id)
		}
	}
	return expired
}

func (b *SnapshotBuffer) newest() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.snapshots) == 0 {
		return 0, false
	}
	return b.snapshots[len(b.snapshots)-1].Timestamp, true
}
