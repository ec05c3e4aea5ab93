package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig maps physical keys to the key names sent to the server.
type InputConfig struct {
	// Aliases renames keys before sending, e.g. WASD to arrows.
	Aliases map[ebiten.Key]string
	// ForwardUnmapped sends keys without an alias under their own name.
	ForwardUnmapped bool
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Aliases: map[ebiten.Key]string{
			ebiten.KeyArrowUp:    "ArrowUp",
			ebiten.KeyArrowDown:  "ArrowDown",
			ebiten.KeyArrowLeft:  "ArrowLeft",
			ebiten.KeyArrowRight: "ArrowRight",
			ebiten.KeyW:          "ArrowUp",
			ebiten.KeyS:          "ArrowDown",
			ebiten.KeyA:          "ArrowLeft",
			ebiten.KeyD:          "ArrowRight",
		},
		ForwardUnmapped: true,
	}
}

// KeyName returns the name key is sent under, or false if it is not sent.
func (c InputConfig) KeyName(key ebiten.Key) (string, bool) {
	if name, ok := c.Aliases[key]; ok {
		return name, true
	}
	if !c.ForwardUnmapped {
		return "", false
	}
	return key.String(), true
}
