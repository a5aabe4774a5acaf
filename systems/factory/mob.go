package factory

import (
	"github.com/automoto/mobspawn/archetypes"
	"github.com/automoto/mobspawn/assets"
	"github.com/automoto/mobspawn/assets/animations"
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/scenegraph"
	"github.com/automoto/mobspawn/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreateMob spawns a mob centered at position together with everything it
// owns: the health bar container and its fill, and the name tag. The whole
// subtree exists by the time this returns.
func CreateMob(w donburi.World, position math.Vec2) *donburi.Entry {
	mob := archetypes.Mob.Spawn(w, components.Object)

	components.Mob.SetValue(mob, components.MobData{Name: cfg.Mob.Name})
	transform.GetTransform(mob).LocalPosition = position
	transform.GetTransform(mob).LocalScale = uniform(cfg.Mob.Scale)
	components.Depth.SetValue(mob, components.DepthData{LocalZ: cfg.Mob.Z})
	components.Health.SetValue(mob, components.HealthData{
		Current: cfg.Mob.Health,
		Max:     cfg.Mob.Health,
	})

	animData := components.AnimationData{
		CurrentAnimation: animations.NewAnimation(cfg.Animation.FirstFrame, cfg.Animation.LastFrame, cfg.Animation.FramePeriod),
		Layout:           assets.NewGridLayout(cfg.Atlas),
	}
	if sheetEntry, ok := components.SpriteSheet.First(w); ok {
		sheet := components.SpriteSheet.Get(sheetEntry)
		animData.Sheet = sheet.Image
		animData.Layout = sheet.Layout
	}
	components.Animation.SetValue(mob, animData)

	components.Sprite.SetValue(mob, components.SpriteData{
		Size:  math.NewVec2(float64(animData.Layout.CellWidth), float64(animData.Layout.CellHeight)),
		Color: cfg.White,
	})
	components.Flash.SetValue(mob, components.FlashData{})

	createHealthBar(w, mob)
	createNameTag(w, mob, cfg.Mob.Name)
	addHitbox(w, mob, position)

	return mob
}

func createHealthBar(w donburi.World, mob *donburi.Entry) *donburi.Entry {
	container := archetypes.HealthBarContainer.Spawn(w)
	bar := components.HealthBarContainerData{
		ReferenceWidth: cfg.HealthBar.ReferenceWidth,
		Height:         cfg.HealthBar.Height,
	}
	components.HealthBarContainer.SetValue(container, bar)
	transform.GetTransform(container).LocalPosition = ownedOffset(cfg.HealthBar.OffsetX, cfg.HealthBar.OffsetY)
	transform.GetTransform(container).LocalScale = uniform(1 / cfg.Mob.Scale)
	components.Sprite.SetValue(container, components.SpriteData{
		Size:  math.NewVec2(bar.ReferenceWidth, bar.Height),
		Color: cfg.HealthBar.BgColor,
	})
	scenegraph.AppendChild(mob, container)

	width, offsetX := bar.Fill(components.Health.Get(mob))
	fill := archetypes.HealthBarFill.Spawn(w)
	transform.GetTransform(fill).LocalPosition = math.NewVec2(offsetX, 0)
	components.Depth.SetValue(fill, components.DepthData{LocalZ: cfg.HealthBar.FillZ})
	components.Sprite.SetValue(fill, components.SpriteData{
		Size:  math.NewVec2(width, bar.Height),
		Color: cfg.HealthBar.FgColor,
	})
	scenegraph.AppendChild(container, fill)

	return container
}

func createNameTag(w donburi.World, mob *donburi.Entry, name string) *donburi.Entry {
	tag := archetypes.NameTag.Spawn(w)
	components.NameTag.SetValue(tag, components.NameTagData{Text: name})
	transform.GetTransform(tag).LocalPosition = ownedOffset(cfg.NameTag.OffsetX, cfg.NameTag.OffsetY)
	transform.GetTransform(tag).LocalScale = uniform(1 / cfg.Mob.Scale)
	scenegraph.AppendChild(mob, tag)
	return tag
}

// ownedOffset converts an offset given in mob-local units to the owner-relative
// position the transform hierarchy expects. Child positions are not scaled by
// the owner, so the mob scale is applied here.
func ownedOffset(x, y float64) math.Vec2 {
	return math.NewVec2(x, y).MulScalar(cfg.Mob.Scale)
}

func uniform(s float64) math.Vec2 {
	return math.NewVec2(s, s)
}

// addHitbox registers the mob in the picking space, when the world has one.
func addHitbox(w donburi.World, mob *donburi.Entry, position math.Vec2) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	x, y := ToSpace(position)
	obj := resolv.NewObject(x-cfg.Mob.HitboxWidth/2, y-cfg.Mob.HitboxHeight/2, cfg.Mob.HitboxWidth, cfg.Mob.HitboxHeight, tags.ResolvMob)
	obj.Data = mob.Entity()
	space.Add(obj)
	components.Object.SetValue(mob, components.ObjectData{Object: obj})
}

// RemoveHitbox takes the mob out of the picking space.
func RemoveHitbox(mob *donburi.Entry) {
	if !mob.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(mob)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
