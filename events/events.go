// Package events holds the typed request queues between input handling and
// the mob lifecycle. Producers publish at any point in a tick; the lifecycle
// system drains every queue exactly once per tick, so nothing carries over.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// SpawnRequested asks for one mob centered at WorldPosition.
type SpawnRequested struct {
	WorldPosition math.Vec2
}

// DespawnAllRequested asks for every mob and its subtree to be removed.
type DespawnAllRequested struct{}

// DespawnRequested asks for a single mob to be removed.
type DespawnRequested struct {
	Entity donburi.Entity
}

// DamageRequested removes Amount health from the mobs under WorldPosition.
type DamageRequested struct {
	WorldPosition math.Vec2
	Amount        float64
}

// CountRequested asks for the number of live mobs to be logged.
type CountRequested struct{}

var (
	Spawn      = devents.NewEventType[SpawnRequested]()
	DespawnAll = devents.NewEventType[DespawnAllRequested]()
	Despawn    = devents.NewEventType[DespawnRequested]()
	Damage     = devents.NewEventType[DamageRequested]()
	Count      = devents.NewEventType[CountRequested]()
)

// Drain delivers every queued event to its subscribers. Spawns go first so
// a despawn-all in the same tick also removes mobs requested this tick.
func Drain(w donburi.World) {
	Spawn.ProcessEvents(w)
	Damage.ProcessEvents(w)
	Despawn.ProcessEvents(w)
	DespawnAll.ProcessEvents(w)
	Count.ProcessEvents(w)
}
