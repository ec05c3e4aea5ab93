package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type IndicatorKind int

const (
	IndicatorConnecting IndicatorKind = iota
	IndicatorReconnecting
)

// IndicatorData is an on-screen status line toggled by the network session.
type IndicatorData struct {
	Kind    IndicatorKind
	Text    string
	Visible bool
	Alpha   float32
	Y       float64 // vertical position as a fraction of the screen height
}

var Indicator = donburi.NewComponentType[IndicatorData]()

// PulseData fades an entity's alpha back and forth.
type PulseData struct {
	Tween    *gween.Tween
	Rising   bool
	Min, Max float32
	Duration float32
}

var Pulse = donburi.NewComponentType[PulseData]()
