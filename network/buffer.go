package network

import (
	"slices"
	"sync"

	"github.com/automoto/shootr/shared/netcomponents"
)

// SnapshotBuffer holds the received snapshots of one entity in timestamp
// order. The network side appends at the tail, the render side prunes at the
// head; both go through the mutex.
type SnapshotBuffer struct {
	mu        sync.Mutex
	snapshots []netcomponents.Snapshot
	capacity  int
}

// NewSnapshotBuffer creates a buffer holding at most capacity snapshots.
// capacity <= 0 means unbounded; positive values below 2 are raised to 2 so
// a bracketing pair always fits.
func NewSnapshotBuffer(capacity int) *SnapshotBuffer {
	if capacity > 0 && capacity < 2 {
		capacity = 2
	}
	return &SnapshotBuffer{capacity: capacity}
}

// Push appends a snapshot. It returns false and drops the snapshot if it is
// older than the current tail by at most EntityTimeout. A tail further ahead
// than that is discarded together with the rest of the buffer, and s starts
// a new history. When the buffer is full the oldest entry is evicted.
func (b *SnapshotBuffer) Push(s netcomponents.Snapshot) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n := len(b.snapshots); n > 0 && s.Timestamp < b.snapshots[n-1].Timestamp {
		if b.snapshots[n-1].Timestamp-s.Timestamp <= EntityTimeout.Milliseconds() {
			return false
		}
		b.snapshots = nil
	}
	if b.capacity > 0 && len(b.snapshots) >= b.capacity {
		b.snapshots = slices.Delete(b.snapshots, 0, len(b.snapshots)-b.capacity+1)
	}
	b.snapshots = append(b.snapshots, s)
	return true
}

// Len returns the number of buffered snapshots.
func (b *SnapshotBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.snapshots)
}

// Snapshots returns a copy of the buffered snapshots.
func (b *SnapshotBuffer) Snapshots() []netcomponents.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.snapshots)
}

// Step prunes everything older than the last snapshot before renderTime and
// interpolates the pair bracketing renderTime. ok is false when there is not
// enough history yet; the buffer is left untouched in that case.
func (b *SnapshotBuffer) Step(renderTime int64) (state netcomponents.Snapshot, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	index := IndexBefore(b.snapshots, renderTime)
	if index <= 0 {
		return netcomponents.Snapshot{}, false
	}
	b.snapshots = slices.Delete(b.snapshots, 0, index)
	return Interpolate(b.snapshots[0], b.snapshots[1], renderTime), true
}

// Ready reports whether the buffer holds two snapshots and its newest one
// is not behind renderTime, so it can bracket renderTime now or later.
func (b *SnapshotBuffer) Ready(renderTime int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.snapshots)
	return n >= 2 && b.snapshots[n-1].Timestamp >= renderTime
}

// IndexBefore returns the index of the last snapshot strictly before
// renderTime, given that a later one exists. It is the index of the first
// snapshot at or after renderTime minus one: -1 when the first snapshot
// already qualifies, -2 when none does (including an empty slice).
func IndexBefore(snapshots []netcomponents.Snapshot, renderTime int64) int {
	found := slices.IndexFunc(snapshots, func(s netcomponents.Snapshot) bool {
		return s.Timestamp >= renderTime
	})
	return found - 1
}
