package archetypes

import (
	"github.com/automoto/shootr/components"
	cfg "github.com/automoto/shootr/config"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/automoto/shootr/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	NetEntity = newArchetype(
		tags.NetEntity,
		netcomponents.NetEntity,
		netcomponents.NetPosition,
		components.Blob,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
		components.Pulse,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
