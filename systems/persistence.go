package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowOverlay  bool `json:"showOverlay"`
	ShowHitboxes bool `json:"showHitboxes"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("failed to open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is not initialized or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings persists the runtime toggles, logging failures.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		ShowOverlay:  s.ShowOverlay,
		ShowHitboxes: s.ShowHitboxes,
	}
	if err := SaveSettings(saved); err != nil {
		logger.L().Warn("could not save settings", zap.Error(err))
	}
}
