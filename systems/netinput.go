package systems

import (
	cfg "github.com/automoto/shootr/config"
	"github.com/automoto/shootr/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// NewNetworkInputSystem returns an ECS system that forwards key transitions
// to the server. Events are dropped by sendFn while the link is down.
func NewNetworkInputSystem(sendFn func(messages.KeyEvent) bool) func(*ecs.ECS) {
	var keys []ebiten.Key // reused each tick to avoid allocation

	return func(_ *ecs.ECS) {
		keys = inpututil.AppendJustPressedKeys(keys[:0])
		for _, k := range keys {
			if name, ok := cfg.Input.KeyName(k); ok {
				sendFn(messages.NewKeyDown(name))
			}
		}

		keys = inpututil.AppendJustReleasedKeys(keys[:0])
		for _, k := range keys {
			if name, ok := cfg.Input.KeyName(k); ok {
				sendFn(messages.NewKeyUp(name))
			}
		}
	}
}
