package archetypes

import (
	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Mob = newArchetype(
		tags.Mob,
		components.Mob,
		transform.Transform,
		components.Depth,
		components.Sprite,
		components.Animation,
		components.Health,
		components.Flash,
	)
	HealthBarContainer = newArchetype(
		tags.HealthBarContainer,
		components.HealthBarContainer,
		transform.Transform,
		components.Depth,
		components.Sprite,
	)
	HealthBarFill = newArchetype(
		tags.HealthBarFill,
		transform.Transform,
		components.Depth,
		components.Sprite,
	)
	NameTag = newArchetype(
		tags.NameTag,
		components.NameTag,
		transform.Transform,
		components.Depth,
	)
	Camera = newArchetype(
		tags.MainCamera,
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
