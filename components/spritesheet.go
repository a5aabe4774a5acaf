package components

import (
	"github.com/automoto/mobspawn/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteSheetData is the sheet every new mob animates over
type SpriteSheetData struct {
	Image  *ebiten.Image
	Layout assets.AtlasLayout
}

var SpriteSheet = donburi.NewComponentType[SpriteSheetData]()
