package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the damage flash on a mob. Amount fades from 1 to 0
// while Tween runs; a nil Tween means no flash is active.
type FlashData struct {
	Tween  *gween.Tween
	Amount float32
}

var Flash = donburi.NewComponentType[FlashData]()
