package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData holds the frame timing shared by every system in a tick.
type ClockData struct {
	Delta   time.Duration // time covered by the current tick
	Elapsed time.Duration // total time since the scene started
	Ticks   uint64
}

var Clock = donburi.NewComponentType[ClockData]()
