package components

import (
	"github.com/automoto/mobspawn/assets"
	"github.com/automoto/mobspawn/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Sheet            *ebiten.Image
	Layout           assets.AtlasLayout
	CachedFrames     map[int]*ebiten.Image // Sub images keyed by atlas index
}

// FrameImage returns the atlas cell for the current frame, or nil when there
// is no sheet to cut it from.
func (a *AnimationData) FrameImage() *ebiten.Image {
	if a.Sheet == nil || a.CurrentAnimation == nil {
		return nil
	}
	index := a.CurrentAnimation.Frame()
	if img, ok := a.CachedFrames[index]; ok {
		return img
	}
	rect, ok := a.Layout.Frame(index)
	if !ok {
		return nil
	}
	img := a.Sheet.SubImage(rect).(*ebiten.Image)
	if a.CachedFrames == nil {
		a.CachedFrames = make(map[int]*ebiten.Image)
	}
	a.CachedFrames[index] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
