package factory

import (
	"github.com/automoto/mobspawn/archetypes"
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateArenaSpace creates the picking space described by the arena config.
func CreateArenaSpace(w donburi.World) *donburi.Entry {
	return CreateSpace(w, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellWidth, cfg.Arena.CellHeight)
}

// ToSpace converts a world position to resolv space coordinates. The arena
// is centered on the world origin while resolv spaces start at zero.
func ToSpace(p math.Vec2) (x, y float64) {
	return p.X + float64(cfg.Arena.Width)/2, p.Y + float64(cfg.Arena.Height)/2
}

// FromSpace is the inverse of ToSpace.
func FromSpace(x, y float64) math.Vec2 {
	return math.NewVec2(x-float64(cfg.Arena.Width)/2, y-float64(cfg.Arena.Height)/2)
}
