package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shootr/components"
	cfg "github.com/automoto/shootr/config"
	"github.com/automoto/shootr/fonts"
	"github.com/automoto/shootr/network"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/automoto/shootr/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

func DrawNetworkedEntities(e *ecs.ECS, screen *ebiten.Image) {
	smallFont := fonts.Small.Get()

	tags.NetEntity.Each(e.World, func(entry *donburi.Entry) {
		pos := netcomponents.NetPosition.Get(entry)
		blob := components.Blob.Get(entry)

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), blob.Radius, blob.Color, true)

		if cfg.Debug.ShowLabels {
			label := netcomponents.NetEntity.Get(entry).ID
			if label == netcomponents.DefaultEntityID {
				label = "default"
			}
			labelX := int(pos.X) - textWidth(smallFont, label)/2
			labelY := int(pos.Y) - int(blob.Radius) - int(cfg.Render.LabelOffsetY)/2
			text.Draw(screen, label, smallFont, labelX, labelY, cfg.White)
		}
	})
}

func DrawIndicators(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Large.Get()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Indicator.Each(e.World, func(entry *donburi.Entry) {
		ind := components.Indicator.Get(entry)
		if !ind.Visible {
			return
		}
		x := (w - textWidth(face, ind.Text)) / 2
		y := int(float64(h) * ind.Y)
		text.Draw(screen, ind.Text, face, x, y, fade(cfg.White, ind.Alpha))
	})
}

// NewNetworkHUDRenderer returns a renderer for the connection status line.
func NewNetworkHUDRenderer(session *network.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowHUD {
			return
		}
		regularFont := fonts.Regular.Get()

		drawn := 0
		tags.NetEntity.Each(e.World, func(_ *donburi.Entry) {
			drawn++
		})

		state := session.State()
		clr := cfg.LightGreen
		if state != network.StateOpen {
			clr = cfg.Orange
		}

		info := fmt.Sprintf("%s - %s - Entities: %d (buffered %d)", state, session.Phase(), drawn, session.Entities())
		text.Draw(screen, info, regularFont, 4, 16, clr)

		if err := session.LastError(); err != nil {
			text.Draw(screen, err.Error(), fonts.Small.Get(), 4, 30, cfg.LightRed)
		}
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}

func fade(c color.RGBA, alpha float32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * alpha)}
}
