package systems

import (
	"testing"
	"time"

	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func frameOf(t *testing.T, mob *donburi.Entry) int {
	t.Helper()
	anim := components.Animation.Get(mob).CurrentAnimation
	require.NotNil(t, anim)
	return anim.Frame()
}

func TestUpdateAnimationsStepsOncePerTick(t *testing.T) {
	w := newTestWorld(t)
	e := ecs.NewECS(w)
	mob := factory.CreateMob(w, math.NewVec2(0, 0))
	require.Equal(t, 1, frameOf(t, mob))

	var seen []int
	for i := 0; i < 2; i++ {
		AdvanceClock(w, 100*time.Millisecond)
		UpdateAnimations(e)
		seen = append(seen, frameOf(t, mob))
	}
	AdvanceClock(w, 50*time.Millisecond)
	UpdateAnimations(e)
	seen = append(seen, frameOf(t, mob))
	assert.Equal(t, []int{2, 3, 3}, seen)

	// A long tick still advances a single frame
	AdvanceClock(w, 350*time.Millisecond)
	UpdateAnimations(e)
	assert.Equal(t, 4, frameOf(t, mob))
}

func TestUpdateAnimationsTimersAreIndependent(t *testing.T) {
	w := newTestWorld(t)
	e := ecs.NewECS(w)
	early := factory.CreateMob(w, math.NewVec2(-100, 0))

	AdvanceClock(w, 100*time.Millisecond)
	UpdateAnimations(e)

	late := factory.CreateMob(w, math.NewVec2(100, 0))
	AdvanceClock(w, 100*time.Millisecond)
	UpdateAnimations(e)

	assert.Equal(t, 3, frameOf(t, early))
	assert.Equal(t, 2, frameOf(t, late))
}

func TestUpdateAnimationsWithoutClock(t *testing.T) {
	w := donburi.NewWorld()
	mob := factory.CreateMob(w, math.NewVec2(0, 0))

	UpdateAnimations(ecs.NewECS(w))
	assert.Equal(t, 1, frameOf(t, mob))
}
