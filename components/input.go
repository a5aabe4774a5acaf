package components

import (
	cfg "github.com/automoto/mobspawn/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionTotal]bool
	Previous [cfg.ActionTotal]bool

	// Cursor in screen pixels. CursorInside is false when the pointer is
	// outside the window, in which case Cursor is stale.
	Cursor       math.Vec2
	CursorInside bool
}

var Input = donburi.NewComponentType[InputData]()
