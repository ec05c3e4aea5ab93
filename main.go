package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/shootr/config"
	"github.com/automoto/shootr/fonts"
	"github.com/automoto/shootr/scenes"
	"github.com/automoto/shootr/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewNetworkedScene(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	local := flag.Bool("local", false, "Connect to the local development server")
	addr := flag.String("addr", "", "Server WebSocket URL (overrides -local)")
	delay := flag.Duration("delay", 0, "Interpolation delay, e.g. 100ms")
	hud := flag.Bool("hud", true, "Show the connection HUD")
	labels := flag.Bool("labels", false, "Show entity ids")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	// Explicit flags win over saved settings
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["local"] {
		config.Network.Local = *local
		config.Network.Address = ""
	}
	if set["addr"] {
		config.Network.Address = *addr
	}
	if set["delay"] {
		config.Network.InterpolationDelay = *delay
	}
	if set["hud"] {
		config.Debug.ShowHUD = *hud
	}
	config.Debug.ShowLabels = *labels

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	game := NewGame()
	err := ebiten.RunGame(game)
	game.scene.Close()
	_ = systems.SaveSettings(systems.CurrentSettings())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
