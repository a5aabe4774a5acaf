package systems

import (
	"testing"

	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/scenegraph"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/automoto/mobspawn/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newTestWorld returns a world with a camera at the origin, a picking space
// and the lifecycle handlers subscribed.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateCamera(w)
	factory.CreateArenaSpace(w)
	RegisterLifecycle(w)
	return w
}

func countOf[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func firstMob(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	mob, ok := tags.Mob.First(w)
	require.True(t, ok, "no mob in world")
	return mob
}

// healthBarOf resolves the container and fill a mob owns.
func healthBarOf(t *testing.T, mob *donburi.Entry) (container, fill *donburi.Entry) {
	t.Helper()
	container, ok := scenegraph.ChildWith(mob, tags.HealthBarContainer)
	require.True(t, ok, "mob has no health bar container")
	fill, ok = scenegraph.ChildWith(container, tags.HealthBarFill)
	require.True(t, ok, "container has no fill")
	return container, fill
}

// leftEdge is the world x of the left side of a centered sprite.
func leftEdge(e *donburi.Entry) float64 {
	pos, scale, _ := scenegraph.WorldTransform(e)
	return pos.X - components.Sprite.Get(e).Size.X*scale/2
}
