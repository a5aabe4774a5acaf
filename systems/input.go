package systems

import (
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/events"
	"github.com/automoto/mobspawn/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateInput polls raw input into the Input singleton and publishes the
// resulting requests. Must run BEFORE UpdateLifecycle in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionTotal]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	input.Cursor = math.NewVec2(float64(cx), float64(cy))
	input.CursorInside = cx >= 0 && cy >= 0 && cx < cfg.C.Width && cy < cfg.C.Height

	PublishRequests(ecs.World, input)
}

// PublishRequests turns this frame's action edges into lifecycle requests.
// Requests tied to a position need the cursor inside the window and a main
// camera; without either they are dropped for the frame.
func PublishRequests(w donburi.World, input *components.InputData) {
	if GetAction(input, cfg.ActionDespawnAll).JustPressed {
		events.DespawnAll.Publish(w, events.DespawnAllRequested{})
	}
	if GetAction(input, cfg.ActionCount).JustPressed {
		events.Count.Publish(w, events.CountRequested{})
	}

	pos, ok := CursorWorldPosition(w, input)
	if !ok {
		return
	}
	if GetAction(input, cfg.ActionSpawn).JustPressed {
		events.Spawn.Publish(w, events.SpawnRequested{WorldPosition: pos})
	}
	if GetAction(input, cfg.ActionDamage).JustPressed {
		events.Damage.Publish(w, events.DamageRequested{WorldPosition: pos, Amount: cfg.Mob.DamageStep})
	}
	if GetAction(input, cfg.ActionDespawnTarget).JustPressed {
		for _, mob := range MobsAt(w, pos) {
			events.Despawn.Publish(w, events.DespawnRequested{Entity: mob.Entity()})
		}
	}
}

// CursorWorldPosition converts the cursor through the main camera.
func CursorWorldPosition(w donburi.World, input *components.InputData) (math.Vec2, bool) {
	if !input.CursorInside {
		return math.Vec2{}, false
	}
	camera, ok := MainCamera(w)
	if !ok {
		return math.Vec2{}, false
	}
	return ScreenToWorld(camera, cfg.C.Width, cfg.C.Height, input.Cursor), true
}

// MainCamera returns the camera all coordinate conversion goes through.
func MainCamera(w donburi.World) (*components.CameraData, bool) {
	entry, ok := tags.MainCamera.First(w)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// ScreenToWorld maps a screen pixel to world units. The camera position sits
// at the screen center and world y grows upwards.
func ScreenToWorld(camera *components.CameraData, width, height int, screen math.Vec2) math.Vec2 {
	return math.NewVec2(
		camera.Position.X+screen.X-float64(width)/2,
		camera.Position.Y-(screen.Y-float64(height)/2),
	)
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(camera *components.CameraData, width, height int, world math.Vec2) math.Vec2 {
	return math.NewVec2(
		world.X-camera.Position.X+float64(width)/2,
		camera.Position.Y-world.Y+float64(height)/2,
	)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
