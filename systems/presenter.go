package systems

import (
	"sync/atomic"

	"github.com/automoto/shootr/archetypes"
	"github.com/automoto/shootr/components"
	cfg "github.com/automoto/shootr/config"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetPresenter draws a network session into an ECS world. Entity methods run
// on the game loop through Session.Tick. Indicator methods may be called from
// the network goroutine, so they only flip flags that UpdateIndicators reads.
type NetPresenter struct {
	ecs        *ecs.ECS
	entities   map[string]donburi.Entity
	colorIndex int

	connecting   atomic.Bool
	reconnecting atomic.Bool
}

func NewNetPresenter(e *ecs.ECS) *NetPresenter {
	return &NetPresenter{
		ecs:      e,
		entities: make(map[string]donburi.Entity),
	}
}

func (p *NetPresenter) ShowConnectingIndicator()   { p.connecting.Store(true) }
func (p *NetPresenter) HideConnectingIndicator()   { p.connecting.Store(false) }
func (p *NetPresenter) ShowReconnectingIndicator() { p.reconnecting.Store(true) }
func (p *NetPresenter) HideReconnectingIndicator() { p.reconnecting.Store(false) }

// PositionEntity moves the drawable for id, creating it on first sight.
func (p *NetPresenter) PositionEntity(id string, x, y float64) {
	entry := p.entry(id)
	if entry == nil {
		entry = p.spawn(id)
	}
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: x, Y: y})
}

// RemoveEntity deletes the drawable for id if there is one.
func (p *NetPresenter) RemoveEntity(id string) {
	if entry := p.entry(id); entry != nil {
		entry.Remove()
	}
	delete(p.entities, id)
}

// Visible reports whether the given indicator should be drawn.
func (p *NetPresenter) Visible(kind components.IndicatorKind) bool {
	if kind == components.IndicatorReconnecting {
		return p.reconnecting.Load()
	}
	return p.connecting.Load()
}

func (p *NetPresenter) entry(id string) *donburi.Entry {
	entity, ok := p.entities[id]
	if !ok || !p.ecs.World.Valid(entity) {
		return nil
	}
	return p.ecs.World.Entry(entity)
}

func (p *NetPresenter) spawn(id string) *donburi.Entry {
	entry := archetypes.NetEntity.Spawn(p.ecs)
	netcomponents.NetEntity.SetValue(entry, netcomponents.NetEntityData{ID: id})

	colors := cfg.Render.EntityColors
	components.Blob.SetValue(entry, components.BlobData{
		Color:  colors[p.colorIndex%len(colors)],
		Radius: cfg.Render.EntityRadius,
	})
	p.colorIndex++

	p.entities[id] = entry.Entity()
	return entry
}
