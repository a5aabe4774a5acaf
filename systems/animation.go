package systems

import (
	"github.com/automoto/mobspawn/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations ticks every animated entity by the frame delta. Each
// entity is stepped on its own timer; nothing is read across entities.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := FrameDelta(ecs.World)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}
