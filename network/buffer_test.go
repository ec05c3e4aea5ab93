package network

import (
	"testing"

	"github.com/automoto/shootr/shared/netcomponents"
)

func timestamps(ts ...int64) []netcomponents.Snapshot {
	out := make([]netcomponents.Snapshot, len(ts))
	for i, t := range ts {
		out[i] = netcomponents.Snapshot{Timestamp: t}
	}
	return out
}

func TestIndexBefore(t *testing.T) {
	tests := []struct {
		name       string
		snapshots  []netcomponents.Snapshot
		renderTime int64
		want       int
	}{
		{name: "empty", snapshots: nil, renderTime: 50, want: -2},
		{name: "render time before all", snapshots: timestamps(100, 200), renderTime: 50, want: -1},
		{name: "render time equals first", snapshots: timestamps(100, 200), renderTime: 100, want: -1},
		{name: "between first and second", snapshots: timestamps(0, 100), renderTime: 50, want: 0},
		{name: "between later pair", snapshots: timestamps(0, 100, 200, 300), renderTime: 250, want: 2},
		{name: "equal to a later one", snapshots: timestamps(0, 100, 200, 300), renderTime: 200, want: 1},
		{name: "after all", snapshots: timestamps(0, 100, 200), renderTime: 500, want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexBefore(tt.snapshots, tt.renderTime); got != tt.want {
				t.Fatalf("IndexBefore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndexBeforeIsLastStrictlyBefore(t *testing.T) {
	snaps := timestamps(0, 10, 20, 30, 40, 50)
	for rt := int64(1); rt <= 50; rt++ {
		got := IndexBefore(snaps, rt)
		if got < 0 {
			t.Fatalf("renderTime %d: got sentinel %d", rt, got)
		}
		if snaps[got].Timestamp >= rt || snaps[got+1].Timestamp < rt {
			t.Fatalf("renderTime %d: index %d does not bracket", rt, got)
		}
	}
}

func TestStepScenario(t *testing.T) {
	b := NewSnapshotBuffer(0)
	b.Push(snap(-100, 0, 0, 0, 0))
	b.Push(snap(0, 0, 0, 0, 0))
	b.Push(snap(100, 10, 0, 1, 0))

	got, ok := b.Step(50)
	if !ok {
		t.Fatalf("expected interpolation")
	}
	if want := snap(50, 5, 0, 0.5, 0); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2 after pruning one", b.Len())
	}
}

func TestStepWithoutEnoughHistory(t *testing.T) {
	b := NewSnapshotBuffer(0)
	if _, ok := b.Step(1000); ok {
		t.Fatalf("empty buffer should not interpolate")
	}

	b.Push(snap(100, 1, 1, 0, 0))
	b.Push(snap(200, 2, 2, 0, 0))
	for _, rt := range []int64{50, 100, 150, 200, 500} {
		if _, ok := b.Step(rt); ok {
			t.Fatalf("render time %d: index <= 0 must not interpolate", rt)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want buffer untouched", b.Len())
	}
}

func TestStepPrunesOnlyBeforeIndex(t *testing.T) {
	b := NewSnapshotBuffer(0)
	for _, ts := range []int64{0, 100, 200, 300, 400} {
		b.Push(snap(ts, float64(ts), 0, 0, 0))
	}

	got, ok := b.Step(250)
	if !ok {
		t.Fatalf("expected interpolation")
	}
	if got.Pos.X != 250 {
		t.Fatalf("pos.x = %v, want 250", got.Pos.X)
	}

	rest := b.Snapshots()
	if len(rest) != 3 {
		t.Fatalf("len = %d, want 3 after pruning 2", len(rest))
	}
	if rest[0].Timestamp != 200 || rest[1].Timestamp != 300 {
		t.Fatalf("bracketing pair lost: %+v", rest[:2])
	}

	// Still inside the same pair: nothing to prune, nothing to do.
	if _, ok := b.Step(280); ok {
		t.Fatalf("step inside the current pair should be a no-op")
	}

	got, ok = b.Step(350)
	if !ok || got.Pos.X != 350 {
		t.Fatalf("third step = %+v ok=%v, want pos.x 350", got, ok)
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestStepDoesNotModifyBufferedSnapshots(t *testing.T) {
	b := NewSnapshotBuffer(0)
	b.Push(snap(-100, 0, 0, 0, 0))
	b.Push(snap(0, 0, 0, 0, 0))
	b.Push(snap(100, 10, 10, 10, 10))

	if _, ok := b.Step(25); !ok {
		t.Fatalf("step failed")
	}
	snaps := b.Snapshots()
	if snaps[0] != snap(0, 0, 0, 0, 0) || snaps[1] != snap(100, 10, 10, 10, 10) {
		t.Fatalf("buffered snapshots modified: %+v", snaps)
	}
}

func TestReady(t *testing.T) {
	b := NewSnapshotBuffer(0)
	if b.Ready(0) {
		t.Fatalf("empty buffer reported ready")
	}
	b.Push(snap(100, 0, 0, 0, 0))
	if b.Ready(0) {
		t.Fatalf("single snapshot reported ready")
	}
	b.Push(snap(200, 0, 0, 0, 0))
	if !b.Ready(150) || !b.Ready(200) {
		t.Fatalf("pair covering render time not ready")
	}
	if b.Ready(201) {
		t.Fatalf("buffer behind render time reported ready")
	}
}

func TestPushRejectsOlderThanTail(t *testing.T) {
	b := NewSnapshotBuffer(0)
	if !b.Push(snap(100, 0, 0, 0, 0)) {
		t.Fatalf("first push rejected")
	}
	if b.Push(snap(50, 0, 0, 0, 0)) {
		t.Fatalf("older snapshot accepted")
	}
	if !b.Push(snap(100, 1, 0, 0, 0)) {
		t.Fatalf("equal timestamp rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestPushRestartsAfterFutureTail(t *testing.T) {
	b := NewSnapshotBuffer(0)
	b.Push(snap(0, 0, 0, 0, 0))
	b.Push(snap(9_000_000_000_000_000, 99, 99, 0, 0))

	if !b.Push(snap(100, 1, 0, 0, 0)) {
		t.Fatalf("snapshot behind a far-future tail rejected")
	}
	got := b.Snapshots()
	if len(got) != 1 || got[0].Timestamp != 100 {
		t.Fatalf("got %+v, want only timestamp 100", got)
	}
	if !b.Push(snap(150, 2, 0, 0, 0)) || b.Len() != 2 {
		t.Fatalf("buffer did not resume after restart, len = %d", b.Len())
	}

	// A tail within EntityTimeout is plain reordering and still wins.
	if b.Push(snap(150-EntityTimeout.Milliseconds(), 0, 0, 0, 0)) {
		t.Fatalf("older snapshot within timeout accepted")
	}
}

func TestPushEvictsOldestWhenFull(t *testing.T) {
	b := NewSnapshotBuffer(3)
	for ts := int64(0); ts < 5; ts++ {
		b.Push(snap(ts, 0, 0, 0, 0))
	}
	got := b.Snapshots()
	if len(got) != 3 || got[0].Timestamp != 2 || got[2].Timestamp != 4 {
		t.Fatalf("got %+v, want timestamps 2..4", got)
	}
}

func TestNewSnapshotBufferMinimumCapacity(t *testing.T) {
	b := NewSnapshotBuffer(1)
	b.Push(snap(0, 0, 0, 0, 0))
	b.Push(snap(100, 10, 0, 0, 0))
	if b.Len() != 2 || !b.Ready(50) {
		t.Fatalf("capacity 1 should be raised to hold a bracketing pair")
	}
}
