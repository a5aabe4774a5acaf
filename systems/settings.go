package systems

import (
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSettings flips the display toggles bound to input actions.
// Must run AFTER UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	settings := GetOrCreateSettings(ecs.World)

	if GetAction(input, cfg.ActionToggleOverlay).JustPressed {
		settings.ShowOverlay = !settings.ShowOverlay
		logger.L().Info("overlay toggled", zap.Bool("visible", settings.ShowOverlay))
		SaveCurrentSettings(settings)
	}
	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		settings.ShowHitboxes = !settings.ShowHitboxes
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the settings singleton, seeding it from the
// configuration and anything persisted from an earlier run.
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		settings := components.SettingsData{
			ShowOverlay:  cfg.UI.ShowOverlay,
			ShowHitboxes: cfg.Debug.ShowHitboxes,
		}
		if saved, err := LoadSettings(); err == nil && saved != nil {
			settings.ShowOverlay = saved.ShowOverlay
			settings.ShowHitboxes = saved.ShowHitboxes
		}
		components.Settings.SetValue(entry, settings)
	}
	return components.Settings.Get(entry)
}
