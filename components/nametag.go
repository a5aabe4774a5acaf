package components

import "github.com/yohamta/donburi"

type NameTagData struct {
	Text string
}

var NameTag = donburi.NewComponentType[NameTagData]()
