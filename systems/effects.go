package systems

import (
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the damage flash tweens and clears finished ones
func UpdateEffects(ecs *ecs.ECS) {
	UpdateFlashes(ecs.World, float32(FrameDelta(ecs.World).Seconds()))
}

// UpdateFlashes steps every running flash by dt seconds.
func UpdateFlashes(w donburi.World, dt float32) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		amount, done := flash.Tween.Update(dt)
		flash.Amount = amount
		if done {
			flash.Tween = nil
			flash.Amount = 0
		}
	})
}

// TriggerDamageFlash starts (or restarts) the red flash on a mob
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Tween = gween.New(1, 0, cfg.Mob.FlashDuration, ease.OutQuad)
	flash.Amount = 1
}
