package systems

import (
	"github.com/automoto/shootr/archetypes"
	"github.com/automoto/shootr/components"
	cfg "github.com/automoto/shootr/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIndicators spawns the connecting and reconnecting status lines.
func CreateIndicators(e *ecs.ECS) {
	createIndicator(e, components.IndicatorConnecting, cfg.Render.ConnectingText, 0.5)
	createIndicator(e, components.IndicatorReconnecting, cfg.Render.ReconnectingText, 0.6)
}

func createIndicator(e *ecs.ECS, kind components.IndicatorKind, label string, y float64) {
	entry := archetypes.Indicator.Spawn(e)
	components.Indicator.SetValue(entry, components.IndicatorData{
		Kind:  kind,
		Text:  label,
		Alpha: cfg.Render.PulseMaxAlpha,
		Y:     y,
	})
	components.Pulse.SetValue(entry, components.PulseData{
		Tween:    gween.New(cfg.Render.PulseMaxAlpha, cfg.Render.PulseMinAlpha, cfg.Render.PulseDuration, ease.InOutSine),
		Min:      cfg.Render.PulseMinAlpha,
		Max:      cfg.Render.PulseMaxAlpha,
		Duration: cfg.Render.PulseDuration,
	})
}

// NewIndicatorSystem returns an ECS system that mirrors the presenter's
// indicator flags and pulses the visible ones.
func NewIndicatorSystem(p *NetPresenter) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		dt := float32(1.0 / float64(ebiten.TPS()))

		components.Indicator.Each(e.World, func(entry *donburi.Entry) {
			ind := components.Indicator.Get(entry)
			visible := p.Visible(ind.Kind)
			pulse := components.Pulse.Get(entry)

			if visible && !ind.Visible {
				// Restart from full brightness each time it appears.
				pulse.Rising = false
				pulse.Tween = gween.New(pulse.Max, pulse.Min, pulse.Duration, ease.InOutSine)
			}
			ind.Visible = visible
			if !visible {
				return
			}

			alpha, done := pulse.Tween.Update(dt)
			ind.Alpha = alpha
			if done {
				pulse.Rising = !pulse.Rising
				if pulse.Rising {
					pulse.Tween = gween.New(pulse.Min, pulse.Max, pulse.Duration, ease.InOutSine)
				} else {
					pulse.Tween = gween.New(pulse.Max, pulse.Min, pulse.Duration, ease.InOutSine)
				}
			}
		})
	}
}
