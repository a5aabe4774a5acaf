package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData is a drawable rectangle. When Image is nil the rectangle is
// filled with Color at Size; otherwise Image is drawn centered.
type SpriteData struct {
	Image *ebiten.Image
	Size  math.Vec2
	Color color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
