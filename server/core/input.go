package core

import (
	"github.com/automoto/shootr/shared/messages"
	"github.com/automoto/shootr/shared/netcomponents"
)

// inputAcceleration is the acceleration an arrow key applies per tick.
const inputAcceleration = 5.0

// applyKey updates acc for one key event. A release only clears an axis if it
// still points the way the released key pushed it. Other keys are ignored.
func applyKey(acc *netcomponents.NetAccelerationData, ev messages.KeyEvent) {
	switch ev.Key {
	case messages.KeyArrowUp:
		press(&acc.Y, -inputAcceleration, ev.Pressed())
	case messages.KeyArrowDown:
		press(&acc.Y, inputAcceleration, ev.Pressed())
	case messages.KeyArrowLeft:
		press(&acc.X, -inputAcceleration, ev.Pressed())
	case messages.KeyArrowRight:
		press(&acc.X, inputAcceleration, ev.Pressed())
	}
}

func press(axis *float64, dir float64, pressed bool) {
	if pressed {
		*axis = dir
		return
	}
	if (dir < 0 && *axis < 0) || (dir > 0 && *axis > 0) {
		*axis = 0
	}
}
