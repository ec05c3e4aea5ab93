package core

import (
	"github.com/automoto/shootr/components"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/automoto/shootr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	wallThickness = 16.0
	cellSize      = 16

	ballSize   = 12.0
	playerSize = 20.0
)

// ActorKind tells balls and players apart.
type ActorKind int

const (
	ActorBall ActorKind = iota
	ActorPlayer
)

// ActorData is the server-only part of a simulated entity.
type ActorData struct {
	Kind ActorKind
}

var Actor = donburi.NewComponentType[ActorData]()

// newArena builds a collision space enclosed by four walls that lie inside
// the world bounds.
func newArena(width, height float64) *resolv.Space {
	space := resolv.NewSpace(int(width), int(height), cellSize, cellSize)

	walls := []*resolv.Object{
		resolv.NewObject(0, 0, width, wallThickness, tags.ResolvWall),
		resolv.NewObject(0, height-wallThickness, width, wallThickness, tags.ResolvWall),
		resolv.NewObject(0, 0, wallThickness, height, tags.ResolvWall),
		resolv.NewObject(width-wallThickness, 0, wallThickness, height, tags.ResolvWall),
	}
	for _, w := range walls {
		w.SetShape(resolv.NewRectangle(0, 0, w.W, w.H))
		space.Add(w)
	}
	return space
}

// spawn creates an entity centered at (x, y) and registers its body in the
// arena.
func (s *Server) spawn(id string, kind ActorKind, x, y, vx, vy float64) donburi.Entity {
	size := playerSize
	if kind == ActorBall {
		size = ballSize
	}

	entity := s.world.Create(
		netcomponents.NetEntity,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetAcceleration,
		components.Object,
		Actor,
	)
	entry := s.world.Entry(entity)

	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvEntity)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry
	s.space.Add(obj)

	netcomponents.NetEntity.SetValue(entry, netcomponents.NetEntityData{ID: id})
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: x, Y: y})
	netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{SpeedX: vx, SpeedY: vy})
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	Actor.SetValue(entry, ActorData{Kind: kind})

	s.entities[id] = entity
	return entity
}

// despawn removes an entity and its body.
func (s *Server) despawn(id string) {
	entity, ok := s.entities[id]
	delete(s.entities, id)
	if !ok || !s.world.Valid(entity) {
		return
	}
	entry := s.world.Entry(entity)
	s.space.Remove(components.Object.Get(entry).Object)
	s.world.Remove(entity)
}
