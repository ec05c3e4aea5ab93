package systems

import (
	"github.com/automoto/shootr/network"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem returns an ECS system that advances the session's
// interpolated view once per update.
func NewNetInterpSystem(session *network.Session) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		session.Tick()
	}
}
