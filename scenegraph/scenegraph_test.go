package scenegraph

import (
	"testing"

	"github.com/automoto/mobspawn/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

var (
	markerA = donburi.NewTag().SetName("A")
	markerB = donburi.NewTag().SetName("B")
)

func newNode(w donburi.World, x, y, scale, z float64, cs ...donburi.IComponentType) *donburi.Entry {
	cs = append([]donburi.IComponentType{transform.Transform, components.Depth}, cs...)
	e := w.Entry(w.Create(cs...))
	transform.GetTransform(e).LocalPosition = math.NewVec2(x, y)
	transform.GetTransform(e).LocalScale = math.NewVec2(scale, scale)
	components.Depth.SetValue(e, components.DepthData{LocalZ: z})
	return e
}

func TestAppendChildLinksBothWays(t *testing.T) {
	w := donburi.NewWorld()
	root := newNode(w, 0, 0, 1, 0)
	a := newNode(w, 0, 0, 1, 0, markerA)
	b := newNode(w, 0, 0, 1, 0, markerB)

	AppendChild(root, a)
	AppendChild(root, b)

	children := Children(root)
	require.Len(t, children, 2)
	assert.Equal(t, a.Entity(), children[0].Entity())
	assert.Equal(t, b.Entity(), children[1].Entity())

	p, ok := Parent(b)
	require.True(t, ok)
	assert.Equal(t, root.Entity(), p.Entity())

	_, ok = Parent(root)
	assert.False(t, ok)
}

func TestAppendChildMovesBetweenOwners(t *testing.T) {
	w := donburi.NewWorld()
	first := newNode(w, 0, 0, 1, 0)
	second := newNode(w, 0, 0, 1, 0)
	child := newNode(w, 0, 0, 1, 0)

	AppendChild(first, child)
	AppendChild(second, child)

	assert.Empty(t, Children(first))
	require.Len(t, Children(second), 1)
}

func TestChildWithIsTyped(t *testing.T) {
	w := donburi.NewWorld()
	root := newNode(w, 0, 0, 1, 0)
	a := newNode(w, 0, 0, 1, 0, markerA)
	b := newNode(w, 0, 0, 1, 0, markerB)
	AppendChild(root, a)
	AppendChild(root, b)

	got, ok := ChildWith(root, markerB)
	require.True(t, ok)
	assert.Equal(t, b.Entity(), got.Entity())

	_, ok = ChildWith(a, markerB)
	assert.False(t, ok)
}

func TestRemoveRecursiveInvalidatesSubtree(t *testing.T) {
	w := donburi.NewWorld()
	owner := newNode(w, 0, 0, 1, 0)
	root := newNode(w, 0, 0, 1, 0)
	mid := newNode(w, 0, 0, 1, 0)
	leaf := newNode(w, 0, 0, 1, 0)
	sibling := newNode(w, 0, 0, 1, 0)
	AppendChild(owner, root)
	AppendChild(root, mid)
	AppendChild(mid, leaf)
	AppendChild(root, sibling)

	ids := []donburi.Entity{root.Entity(), mid.Entity(), leaf.Entity(), sibling.Entity()}
	removed := RemoveRecursive(root)

	assert.Equal(t, 4, removed)
	for _, id := range ids {
		assert.False(t, w.Valid(id))
	}
	assert.True(t, owner.Valid())
	assert.Empty(t, Children(owner))
	assert.Equal(t, 1, w.Len())
}

func TestRemoveRecursiveOnRemovedEntryIsNoop(t *testing.T) {
	w := donburi.NewWorld()
	root := newNode(w, 0, 0, 1, 0)
	require.Equal(t, 1, RemoveRecursive(root))
	assert.Equal(t, 0, RemoveRecursive(root))
}

func TestWorldTransformComposesOwners(t *testing.T) {
	w := donburi.NewWorld()
	mob := newNode(w, 10, 20, 6, 6)
	// Owned positions are not scaled by the owner.
	bar := newNode(w, 0, -13*6, 1.0/6.0, 0)
	fill := newNode(w, -25, 0, 1, 1)
	AppendChild(mob, bar)
	AppendChild(bar, fill)

	pos, scale, z := WorldTransform(bar)
	assert.InDelta(t, 10, pos.X, 1e-9)
	assert.InDelta(t, 20-13*6, pos.Y, 1e-9)
	assert.InDelta(t, 1, scale, 1e-9)
	assert.InDelta(t, 6, z, 1e-9)

	pos, scale, z = WorldTransform(fill)
	assert.InDelta(t, 10-25, pos.X, 1e-9)
	assert.InDelta(t, 20-13*6, pos.Y, 1e-9)
	assert.InDelta(t, 1, scale, 1e-9)
	assert.InDelta(t, 7, z, 1e-9)
}

func TestWorldTransformWithoutDepth(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(transform.Transform))
	transform.GetTransform(e).LocalPosition = math.NewVec2(3, 4)

	pos, scale, z := WorldTransform(e)
	assert.Equal(t, math.NewVec2(3, 4), pos)
	assert.InDelta(t, 1, scale, 1e-9)
	assert.Zero(t, z)
}

func TestDescendantsIsDepthFirst(t *testing.T) {
	w := donburi.NewWorld()
	root := newNode(w, 0, 0, 1, 0)
	a := newNode(w, 0, 0, 1, 0)
	leaf := newNode(w, 0, 0, 1, 0)
	b := newNode(w, 0, 0, 1, 0)
	AppendChild(root, a)
	AppendChild(a, leaf)
	AppendChild(root, b)

	got := Descendants(root)
	require.Len(t, got, 3)
	assert.Equal(t, a.Entity(), got[0].Entity())
	assert.Equal(t, leaf.Entity(), got[1].Entity())
	assert.Equal(t, b.Entity(), got[2].Entity())
}
