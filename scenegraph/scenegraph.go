// Package scenegraph holds the ownership lookups mobs need on top of donburi's
// transform hierarchy. Removing an owner removes its whole subtree. Draw depth
// is not part of the transform, so it is kept in components.Depth and adds up
// along the owner chain.
package scenegraph

import (
	"github.com/automoto/mobspawn/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// AppendChild makes parent the owner of child, moving child away from any
// previous owner. Local transforms are kept as they are.
func AppendChild(parent, child *donburi.Entry) {
	if _, ok := Parent(child); ok {
		transform.ChangeParent(child, parent, false)
		return
	}
	transform.AppendChild(parent, child, false)
}

// Parent returns the live owner of entry.
func Parent(entry *donburi.Entry) (*donburi.Entry, bool) {
	if !entry.HasComponent(transform.Transform) {
		return nil, false
	}
	return transform.GetParent(entry)
}

// Children returns the live entities owned by entry, in the order they were
// appended.
func Children(entry *donburi.Entry) []*donburi.Entry {
	children, ok := transform.GetChildren(entry)
	if !ok {
		return nil
	}
	out := make([]*donburi.Entry, 0, len(children))
	for _, c := range children {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// ChildWith returns the first child of entry carrying c.
func ChildWith(entry *donburi.Entry, c donburi.IComponentType) (*donburi.Entry, bool) {
	return transform.FindChildWithComponent(entry, c)
}

// Descendants returns every live entity below entry, depth first.
func Descendants(entry *donburi.Entry) []*donburi.Entry {
	var out []*donburi.Entry
	for _, child := range Children(entry) {
		out = append(out, child)
		out = append(out, Descendants(child)...)
	}
	return out
}

// RemoveRecursive removes entry and everything it owns, and unlinks it from
// its owner. It returns the number of entities removed. Every removed handle
// becomes invalid.
func RemoveRecursive(entry *donburi.Entry) int {
	if !entry.Valid() {
		return 0
	}
	removed := len(Descendants(entry)) + 1
	transform.RemoveRecursive(entry)
	return removed
}

// WorldTransform resolves entry's world position, its uniform world scale and
// its world depth.
func WorldTransform(entry *donburi.Entry) (pos math.Vec2, scale, z float64) {
	if entry.HasComponent(transform.Transform) {
		pos = transform.WorldPosition(entry)
		scale = transform.WorldScale(entry).X
	}
	for cur, ok := entry, true; ok; cur, ok = Parent(cur) {
		if cur.HasComponent(components.Depth) {
			z += components.Depth.Get(cur).LocalZ
		}
	}
	return pos, scale, z
}
