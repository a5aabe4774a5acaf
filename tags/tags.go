package tags

import "github.com/yohamta/donburi"

var (
	Mob                = donburi.NewTag().SetName("Mob")
	HealthBarContainer = donburi.NewTag().SetName("HealthBarContainer")
	HealthBarFill      = donburi.NewTag().SetName("HealthBarFill")
	NameTag            = donburi.NewTag().SetName("NameTag")
	MainCamera         = donburi.NewTag().SetName("MainCamera")
)

// Resolv tags for picking
const (
	ResolvMob    = "mob"
	ResolvCursor = "cursor"
)
