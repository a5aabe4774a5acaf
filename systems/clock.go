package systems

import (
	"time"

	"github.com/automoto/mobspawn/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock records the time covered by this tick. ebiten runs updates at
// a fixed TPS, so every tick covers the same span.
func UpdateClock(ecs *ecs.ECS) {
	AdvanceClock(ecs.World, tickDelta(ebiten.TPS(), ebiten.ActualFPS()))
}

// tickDelta is the span of one update. With ebiten.SyncWithFPS the TPS is
// negative and updates follow the measured frame rate instead.
func tickDelta(tps int, actualFPS float64) time.Duration {
	if tps > 0 {
		return time.Second / time.Duration(tps)
	}
	if actualFPS > 0 {
		return time.Duration(float64(time.Second) / actualFPS)
	}
	return 0
}

// AdvanceClock moves the clock forward by dt.
func AdvanceClock(w donburi.World, dt time.Duration) {
	clock := getOrCreateClock(w)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++
}

// FrameDelta returns the span of the current tick, zero before the first one.
func FrameDelta(w donburi.World) time.Duration {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func getOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
