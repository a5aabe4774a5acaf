package systems

import (
	"testing"

	cfg "github.com/automoto/mobspawn/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSettingsSeededFromConfig(t *testing.T) {
	w := donburi.NewWorld()
	settings := GetOrCreateSettings(w)

	assert.Equal(t, cfg.UI.ShowOverlay, settings.ShowOverlay)
	assert.Equal(t, cfg.Debug.ShowHitboxes, settings.ShowHitboxes)
	assert.Same(t, settings, GetOrCreateSettings(w))
}

func TestUpdateSettingsTogglesOnPress(t *testing.T) {
	w := donburi.NewWorld()
	e := ecs.NewECS(w)
	input := getOrCreateInput(w)
	settings := GetOrCreateSettings(w)
	overlay, hitboxes := settings.ShowOverlay, settings.ShowHitboxes

	input.Current[cfg.ActionToggleOverlay] = true
	input.Current[cfg.ActionToggleHitboxes] = true
	UpdateSettings(e)

	assert.Equal(t, !overlay, settings.ShowOverlay)
	assert.Equal(t, !hitboxes, settings.ShowHitboxes)

	// Held keys do not toggle again
	input.Previous = input.Current
	UpdateSettings(e)
	assert.Equal(t, !overlay, settings.ShowOverlay)
}
