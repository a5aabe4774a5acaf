package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/fonts"
	"github.com/automoto/mobspawn/scenegraph"
	"github.com/automoto/mobspawn/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// drawable is an entity resolved to world space for one frame
type drawable struct {
	entry *donburi.Entry
	pos   math.Vec2
	scale float64
	z     float64
}

// collect resolves the world transform of every entry in the query order and
// sorts them back to front. Equal z keeps spawn order.
func collect(each func(func(*donburi.Entry))) []drawable {
	var out []drawable
	each(func(e *donburi.Entry) {
		pos, scale, z := scenegraph.WorldTransform(e)
		out = append(out, drawable{entry: e, pos: pos, scale: scale, z: z})
	})
	slices.SortStableFunc(out, func(a, b drawable) int {
		return cmp.Compare(a.z, b.z)
	})
	return out
}

// DrawMobs renders each mob's current atlas frame centered on its position.
func DrawMobs(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := MainCamera(ecs.World)
	if !ok {
		return // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	mobs := collect(func(fn func(*donburi.Entry)) { tags.Mob.Each(ecs.World, fn) })
	for _, d := range mobs {
		sprite := components.Sprite.Get(d.entry)
		center := WorldToScreen(camera, width, height, d.pos)

		img := components.Animation.Get(d.entry).FrameImage()
		if img == nil {
			// No sheet loaded: draw the frame bounds instead
			w, h := sprite.Size.X*d.scale, sprite.Size.Y*d.scale
			vector.FillRect(screen, float32(center.X-w/2), float32(center.Y-h/2), float32(w), float32(h), sprite.Color, false)
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterNearest

		drawOp.GeoM.Translate(-sprite.Size.X/2, -sprite.Size.Y/2)
		drawOp.GeoM.Scale(d.scale, d.scale)
		drawOp.GeoM.Translate(center.X, center.Y)

		if d.entry.HasComponent(components.Flash) {
			if a := components.Flash.Get(d.entry).Amount; a > 0 {
				drawOp.ColorScale.Scale(1+2*a, 1, 1, 1) // Red tint (multiplier)
			}
		}

		screen.DrawImage(img, drawOp)
	}
}

// DrawHealthBars fills the container and fill rectangles of every bar. The
// fill sits one z step above its container.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := MainCamera(ecs.World)
	if !ok {
		return // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	bars := collect(func(fn func(*donburi.Entry)) {
		tags.HealthBarContainer.Each(ecs.World, fn)
		tags.HealthBarFill.Each(ecs.World, fn)
	})
	for _, d := range bars {
		sprite := components.Sprite.Get(d.entry)
		w, h := sprite.Size.X*d.scale, sprite.Size.Y*d.scale
		if w <= 0 || h <= 0 {
			continue
		}
		center := WorldToScreen(camera, width, height, d.pos)
		vector.FillRect(screen, float32(center.X-w/2), float32(center.Y-h/2), float32(w), float32(h), sprite.Color, false)
	}
}

// DrawNameTags writes each mob's name centered on its tag position.
func DrawNameTags(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := MainCamera(ecs.World)
	if !ok {
		return // No camera yet
	}
	face, ok := fonts.NameTag.Lookup()
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tagsToDraw := collect(func(fn func(*donburi.Entry)) { tags.NameTag.Each(ecs.World, fn) })
	for _, d := range tagsToDraw {
		label := components.NameTag.Get(d.entry).Text
		if label == "" {
			continue
		}
		pos := WorldToScreen(camera, width, height, d.pos)
		textWidth := font.MeasureString(face, label).Ceil()
		ascent := face.Metrics().Ascent.Ceil()
		text.Draw(screen, label, face, int(pos.X)-textWidth/2, int(pos.Y)+ascent/2, cfg.NameTag.Color)
	}
}
