package systems

import (
	"testing"

	"github.com/automoto/mobspawn/components"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestDamageFlashFadesOut(t *testing.T) {
	w := newTestWorld(t)
	mob := factory.CreateMob(w, math.NewVec2(0, 0))
	flash := components.Flash.Get(mob)
	assert.Nil(t, flash.Tween)

	TriggerDamageFlash(mob)
	assert.Equal(t, float32(1), flash.Amount)

	UpdateFlashes(w, 0.1)
	assert.Greater(t, flash.Amount, float32(0))
	assert.Less(t, flash.Amount, float32(1))

	UpdateFlashes(w, 1)
	assert.Nil(t, flash.Tween)
	assert.Zero(t, flash.Amount)
}

func TestDamageFlashRestarts(t *testing.T) {
	w := newTestWorld(t)
	mob := factory.CreateMob(w, math.NewVec2(0, 0))
	flash := components.Flash.Get(mob)

	TriggerDamageFlash(mob)
	UpdateFlashes(w, 0.2)
	TriggerDamageFlash(mob)

	assert.Equal(t, float32(1), flash.Amount)
	assert.NotNil(t, flash.Tween)
}
