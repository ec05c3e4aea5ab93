package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// NetworkConfig contains connection settings. Flags and saved settings
// override these before the first scene starts.
type NetworkConfig struct {
	Local              bool   // Dial the local development server
	Address            string // Explicit address, wins over Local
	InterpolationDelay time.Duration
}

// RenderConfig contains drawing settings for networked entities
type RenderConfig struct {
	EntityRadius  float32
	EntityColors  []color.RGBA
	LabelOffsetY  float32
	BackgroundCol color.RGBA

	// Indicator pulse (seconds per half cycle, alpha range)
	PulseDuration float32
	PulseMinAlpha float32
	PulseMaxAlpha float32

	ConnectingText   string
	ReconnectingText string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD    bool // Draw connection state and entity count
	ShowLabels bool // Draw entity ids next to entities
}

// Global configuration instances
var C *Config
var Network NetworkConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "shootr",
	}

	Network = NetworkConfig{
		Local:              false,
		InterpolationDelay: 100 * time.Millisecond,
	}

	Render = RenderConfig{
		EntityRadius:  10,
		EntityColors:  []color.RGBA{LightBlue, BrightOrange, LightGreen, Magenta, Yellow},
		LabelOffsetY:  14,
		BackgroundCol: color.RGBA{R: 15, G: 25, B: 50, A: 255},

		PulseDuration: 0.6,
		PulseMinAlpha: 0.25,
		PulseMaxAlpha: 1.0,

		ConnectingText:   "Connecting...",
		ReconnectingText: "Connection lost, reconnecting...",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHUD:    true,
		ShowLabels: false,
	}
}
