package systems

import (
	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/events"
	"github.com/automoto/mobspawn/logger"
	"github.com/automoto/mobspawn/scenegraph"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/automoto/mobspawn/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// RegisterLifecycle subscribes the lifecycle handlers to the world's request
// queues. Call it once per world.
func RegisterLifecycle(w donburi.World) {
	events.Spawn.Subscribe(w, onSpawnRequested)
	events.DespawnAll.Subscribe(w, onDespawnAllRequested)
	events.Despawn.Subscribe(w, onDespawnRequested)
	events.Damage.Subscribe(w, onDamageRequested)
	events.Count.Subscribe(w, onCountRequested)
}

// UpdateLifecycle drains every request queued since the previous tick. It is
// the only system that adds or removes entities, so everything after it in
// the tick sees a stable graph.
func UpdateLifecycle(ecs *ecs.ECS) {
	events.Drain(ecs.World)
}

func onSpawnRequested(w donburi.World, ev events.SpawnRequested) {
	mob := factory.CreateMob(w, ev.WorldPosition)
	logger.L().Info("mob spawned",
		zap.Any("entity", mob.Entity()),
		zap.Float64("x", ev.WorldPosition.X),
		zap.Float64("y", ev.WorldPosition.Y),
	)
}

func onDespawnAllRequested(w donburi.World, _ events.DespawnAllRequested) {
	n := DespawnAll(w)
	logger.L().Info("mobs despawned", zap.Int("count", n))
}

func onDespawnRequested(w donburi.World, ev events.DespawnRequested) {
	if Despawn(w, ev.Entity) {
		logger.L().Info("mob despawned", zap.Any("entity", ev.Entity))
	}
}

func onDamageRequested(w donburi.World, ev events.DamageRequested) {
	hit := DamageAt(w, ev.WorldPosition, ev.Amount)
	logger.L().Debug("damage applied", zap.Int("hit", hit), zap.Float64("amount", ev.Amount))
}

func onCountRequested(w donburi.World, _ events.CountRequested) {
	logger.L().Info("mob count", zap.Int("count", CountMobs(w)))
}

// DespawnAll removes every mob with everything it owns and returns how many
// mobs were removed. With no mobs it does nothing.
func DespawnAll(w donburi.World) int {
	var mobs []*donburi.Entry
	tags.Mob.Each(w, func(e *donburi.Entry) {
		mobs = append(mobs, e)
	})

	for _, mob := range mobs {
		despawnMob(mob)
	}
	return len(mobs)
}

// Despawn removes a single mob and its subtree. Stale handles and entities
// that are not mobs are ignored.
func Despawn(w donburi.World, entity donburi.Entity) bool {
	if !w.Valid(entity) {
		return false
	}
	mob := w.Entry(entity)
	if !mob.HasComponent(tags.Mob) {
		return false
	}
	despawnMob(mob)
	return true
}

// DamageAt removes amount health from every mob under pos and returns how
// many were hit. Mobs left without health are despawned.
func DamageAt(w donburi.World, pos math.Vec2, amount float64) int {
	mobs := MobsAt(w, pos)
	for _, mob := range mobs {
		health := components.Health.Get(mob)
		health.Damage(amount)
		if health.Depleted() {
			despawnMob(mob)
			continue
		}
		TriggerDamageFlash(mob)
	}
	return len(mobs)
}

// CountMobs returns the number of live mobs.
func CountMobs(w donburi.World) int {
	count := 0
	tags.Mob.Each(w, func(*donburi.Entry) {
		count++
	})
	return count
}

// MobsAt returns the mobs whose hit box contains pos. Without a picking
// space nothing is ever hit.
func MobsAt(w donburi.World, pos math.Vec2) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	x, y := factory.ToSpace(pos)
	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvMob)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, obj := range check.Objects {
		// Check is a broadphase over shared cells; narrow down to the box.
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		entity, ok := obj.Data.(donburi.Entity)
		if !ok || !w.Valid(entity) {
			continue
		}
		out = append(out, w.Entry(entity))
	}
	return out
}

func despawnMob(mob *donburi.Entry) {
	factory.RemoveHitbox(mob)
	scenegraph.RemoveRecursive(mob)
}
