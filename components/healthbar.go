package components

import "github.com/yohamta/donburi"

// HealthBarContainerData is the fixed background of a mob's health bar.
// The fill beneath it is sized against ReferenceWidth.
type HealthBarContainerData struct {
	ReferenceWidth float64
	Height         float64
}

var HealthBarContainer = donburi.NewComponentType[HealthBarContainerData]()

// Fill returns the fill width for h and the fill's local x offset that keeps
// its left edge on the container's left edge. The container is centered on
// its own origin.
func (c *HealthBarContainerData) Fill(h *HealthData) (width, offsetX float64) {
	width = h.Ratio() * c.ReferenceWidth
	offsetX = -c.ReferenceWidth/2 + width/2
	return width, offsetX
}
