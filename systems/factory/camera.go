package factory

import (
	"github.com/automoto/mobspawn/archetypes"
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera returns the main camera, creating it on first use so the
// world never holds more than one.
func CreateCamera(w donburi.World) *donburi.Entry {
	if existing, ok := tags.MainCamera.First(w); ok {
		return existing
	}
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(cfg.Camera.StartX, cfg.Camera.StartY),
	})
	return camera
}
