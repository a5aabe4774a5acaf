package systems

import (
	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/scenegraph"
	"github.com/automoto/mobspawn/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateHealthBars rewrites every health bar fill from its mob's health.
// Must run AFTER UpdateLifecycle so mobs spawned this tick are linked.
func UpdateHealthBars(ecs *ecs.ECS) {
	SyncHealthBars(ecs.World)
}

// SyncHealthBars walks mob -> container -> fill through the ownership index
// and writes the fill's width and offset. Mobs missing part of the bar are
// skipped.
func SyncHealthBars(w donburi.World) {
	tags.Mob.Each(w, func(mob *donburi.Entry) {
		if !mob.HasComponent(components.Health) {
			return
		}
		container, ok := scenegraph.ChildWith(mob, tags.HealthBarContainer)
		if !ok || !container.HasComponent(components.HealthBarContainer) {
			return
		}
		fill, ok := scenegraph.ChildWith(container, tags.HealthBarFill)
		if !ok {
			return
		}

		bar := components.HealthBarContainer.Get(container)
		width, offsetX := bar.Fill(components.Health.Get(mob))

		sprite := components.Sprite.Get(fill)
		sprite.Size.X = width
		sprite.Size.Y = bar.Height

		transform.GetTransform(fill).LocalPosition.X = offsetX
	})
}
