package scenes

import (
	"context"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/shootr/config"
	"github.com/automoto/shootr/network"
	"github.com/automoto/shootr/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene renders the server's world through an interpolating session.
type NetworkedScene struct {
	ecsWorld  *ecs.ECS
	session   *network.Session
	presenter *systems.NetPresenter
	cancel    context.CancelFunc
	once      sync.Once
	closeOnce sync.Once
}

func NewNetworkedScene() *NetworkedScene {
	return &NetworkedScene{}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)
	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	screen.Fill(cfg.Render.BackgroundCol)
	ns.ecsWorld.Draw(screen)
}

// Close shuts the session down. Safe to call more than once.
func (ns *NetworkedScene) Close() {
	ns.closeOnce.Do(func() {
		if ns.session == nil {
			return
		}
		if err := ns.session.Shutdown(); err != nil {
			log.Printf("[networked] shutdown: %v", err)
		}
		ns.cancel()
	})
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())
	ns.presenter = systems.NewNetPresenter(ns.ecsWorld)
	ns.session = network.NewSession(NetworkConfig(), ns.presenter)

	systems.CreateIndicators(ns.ecsWorld)

	ns.ecsWorld.AddSystem(systems.NewNetworkInputSystem(ns.session.Send))
	ns.ecsWorld.AddSystem(systems.NewNetInterpSystem(ns.session))
	ns.ecsWorld.AddSystem(systems.NewIndicatorSystem(ns.presenter))
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawNetworkedEntities)
	ns.ecsWorld.AddRenderer(cfg.HUD, systems.DrawIndicators)
	ns.ecsWorld.AddRenderer(cfg.HUD, systems.NewNetworkHUDRenderer(ns.session))

	ctx, cancel := context.WithCancel(context.Background())
	ns.cancel = cancel
	if err := ns.session.Start(ctx); err != nil {
		log.Printf("[networked] start: %v", err)
	}
}

// NetworkConfig builds the session settings from the global configuration.
// An explicit address wins over the local/remote switch.
func NetworkConfig() *network.Config {
	c := network.DefaultConfig()
	c.Address = network.SelectAddress(cfg.Network.Local)
	if cfg.Network.Address != "" {
		c.Address = cfg.Network.Address
	}
	if cfg.Network.InterpolationDelay > 0 {
		c.InterpolationDelay = cfg.Network.InterpolationDelay
	}
	return c
}
