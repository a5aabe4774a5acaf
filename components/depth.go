package components

import "github.com/yohamta/donburi"

// DepthData is the draw order of an entity relative to its owner. Owned
// entities add their LocalZ to the owner's world depth.
type DepthData struct {
	LocalZ float64
}

var Depth = donburi.NewComponentType[DepthData]()
