package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical scene action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionSpawn
	ActionDespawnAll
	ActionDespawnTarget
	ActionDamage
	ActionCount
	ActionToggleOverlay
	ActionToggleHitboxes
	ActionTotal // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionSpawn: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionDespawnAll: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			ActionDespawnTarget: {
				Keys: []ebiten.Key{ebiten.KeyX},
			},
			ActionDamage: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionCount: {
				Keys:         []ebiten.Key{ebiten.KeyC},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonMiddle},
			},
			ActionToggleOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF12},
			},
			ActionToggleHitboxes: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
