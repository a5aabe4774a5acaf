package components

import "github.com/yohamta/donburi"

type MobData struct {
	Name string
}

var Mob = donburi.NewComponentType[MobData]()
