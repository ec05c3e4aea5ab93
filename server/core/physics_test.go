package core

import (
	"testing"

	"github.com/automoto/shootr/components"
	"github.com/automoto/shootr/shared/netcomponents"
)

func TestBallBouncesOffRightWall(t *testing.T) {
	s := NewServer(Config{Port: 1, UpdatesPerSec: 20, WorldWidth: 200, WorldHeight: 200})
	s.spawn("probe", ActorBall, 170, 100, 10, 0)
	entry, _ := s.entry("probe")

	s.updatePhysics()

	vel := netcomponents.NetVelocity.Get(entry)
	if vel.SpeedX != -10 {
		t.Fatalf("vel.x = %v, want -10", vel.SpeedX)
	}
	obj := components.Object.Get(entry).Object
	if right := obj.X + obj.W; right > 200-wallThickness {
		t.Fatalf("body overlaps wall: right edge %v", right)
	}
	if pos := netcomponents.NetPosition.Get(entry); pos.X != obj.X+obj.W/2 {
		t.Fatalf("position %v does not match body center %v", pos.X, obj.X+obj.W/2)
	}
}

func TestBallStaysInsideArena(t *testing.T) {
	s := NewServer(Config{Port: 1, UpdatesPerSec: 20, WorldWidth: 320, WorldHeight: 240})
	entry, _ := s.entry(s.ballID)

	for i := 0; i < 500; i++ {
		s.updatePhysics()
		pos := netcomponents.NetPosition.Get(entry)
		if pos.X < wallThickness || pos.X > 320-wallThickness || pos.Y < wallThickness || pos.Y > 240-wallThickness {
			t.Fatalf("step %d: ball escaped to (%v, %v)", i, pos.X, pos.Y)
		}
	}
}

func TestStepAxis(t *testing.T) {
	tests := []struct {
		name string
		v, a float64
		kind ActorKind
		want float64
	}{
		{name: "accelerates", v: 0, a: 5, kind: ActorPlayer, want: 5},
		{name: "clamps", v: 10, a: 5, kind: ActorPlayer, want: maxSpeed},
		{name: "clamps negative", v: -10, a: -5, kind: ActorBall, want: -maxSpeed},
		{name: "player damped", v: 10, a: 0, kind: ActorPlayer, want: 10 * playerDamping},
		{name: "player stops", v: 0.01, a: 0, kind: ActorPlayer, want: 0},
		{name: "ball keeps speed", v: 4, a: 0, kind: ActorBall, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepAxis(tt.v, tt.a, tt.kind); got != tt.want {
				t.Fatalf("stepAxis(%v, %v) = %v, want %v", tt.v, tt.a, got, tt.want)
			}
		})
	}
}
