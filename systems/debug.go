package systems

import (
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/automoto/mobspawn/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every object in the picking space. Toggled with F3.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs.World)
	if !settings.ShowHitboxes {
		return
	}

	camera, ok := MainCamera(ecs.World)
	if !ok {
		return // No camera yet
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, obj := range space.Objects() {
		// Space y grows with world y, so the top edge is Y+H
		topLeft := WorldToScreen(camera, width, height, factory.FromSpace(obj.X, obj.Y+obj.H))
		x, y := float32(topLeft.X), float32(topLeft.Y)
		w, h := float32(obj.W), float32(obj.H)
		if x+w < 0 || y+h < 0 || x > float32(width) || y > float32(height) {
			continue
		}

		c := cfg.White
		if obj.HasTags(tags.ResolvMob) {
			c = cfg.Cyan
		}

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
