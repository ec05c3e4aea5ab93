package systems

import (
	"encoding/json"
	"log"
	"time"

	cfg "github.com/automoto/shootr/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Address              string `json:"address,omitempty"`
	Local                bool   `json:"local"`
	InterpolationDelayMs int64  `json:"interpolationDelayMs"`
	ShowHUD              bool   `json:"showHud"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shootr",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the running configuration for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Address:              cfg.Network.Address,
		Local:                cfg.Network.Local,
		InterpolationDelayMs: cfg.Network.InterpolationDelay.Milliseconds(),
		ShowHUD:              cfg.Debug.ShowHUD,
	}
}

// ApplySavedSettings copies loaded settings into the global configuration.
// Called at startup before flags are applied.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Network.Address = saved.Address
	cfg.Network.Local = saved.Local
	if saved.InterpolationDelayMs > 0 {
		cfg.Network.InterpolationDelay = time.Duration(saved.InterpolationDelayMs) * time.Millisecond
	}
	cfg.Debug.ShowHUD = saved.ShowHUD
}
