package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime display toggles
type SettingsData struct {
	ShowOverlay  bool
	ShowHitboxes bool
}

var Settings = donburi.NewComponentType[SettingsData]()
