package network

import (
	"sort"
	"testing"

	"github.com/automoto/shootr/shared/netcomponents"
)

func entitySnap(id string, ts int64, x float64) netcomponents.Snapshot {
	return netcomponents.Snapshot{ID: id, Timestamp: ts, Pos: netcomponents.Vec2{X: x}}
}

func TestStoreStepsEntitiesIndependently(t *testing.T) {
	s := NewSnapshotStore(0)
	s.Push(entitySnap("a", -100, -100))
	s.Push(entitySnap("a", 0, 0))
	s.Push(entitySnap("a", 100, 100))
	s.Push(entitySnap("b", 20, -20))
	s.Push(entitySnap("b", 40, 0))
	s.Push(entitySnap("b", 60, 20))
	s.Push(entitySnap("c", 90, 0))

	got := map[string]float64{}
	n := s.Step(50, func(state netcomponents.Snapshot) {
		got[state.ID] = state.Pos.X
	})

	if n != 2 {
		t.Fatalf("stepped %d entities, want 2", n)
	}
	if got["a"] != 50 || got["b"] != 10 {
		t.Fatalf("got %v, want a=50 b=10", got)
	}
	if _, ok := got["c"]; ok {
		t.Fatalf("entity c has no history and must not be stepped")
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if n := s.Ready(50); n != 2 {
		t.Fatalf("ready = %d, want 2", n)
	}
}

func TestStoreDefaultEntity(t *testing.T) {
	s := NewSnapshotStore(0)
	s.Push(netcomponents.Snapshot{Timestamp: 1})
	if _, ok := s.Buffer(netcomponents.DefaultEntityID); !ok {
		t.Fatalf("snapshot without id should land in the default buffer")
	}
}

func TestStoreExpire(t *testing.T) {
	s := NewSnapshotStore(0)
	s.Push(entitySnap("old", 100, 0))
	s.Push(entitySnap("new", 900, 0))
	s.Push(entitySnap("mixed", 100, 0))
	s.Push(entitySnap("mixed", 950, 0))

	expired := s.Expire(500)
	sort.Strings(expired)
	if len(expired) != 1 || expired[0] != "old" {
		t.Fatalf("expired = %v, want [old]", expired)
	}
	if _, ok := s.Buffer("old"); ok {
		t.Fatalf("expired buffer still present")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}
