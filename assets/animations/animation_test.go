package animations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const period = 100 * time.Millisecond

func TestNewAnimationStartsOnFirstFrame(t *testing.T) {
	a := NewAnimation(1, 5, period)
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.Looped)
}

func TestShortTicksNeverStep(t *testing.T) {
	a := NewAnimation(1, 5, period)
	for i := 0; i < 9; i++ {
		assert.False(t, a.Update(10*time.Millisecond))
	}
	assert.Equal(t, 1, a.Frame())

	assert.True(t, a.Update(10*time.Millisecond))
	assert.Equal(t, 2, a.Frame())
	assert.Equal(t, time.Duration(0), a.Elapsed())
}

func TestSequenceWithTicksEveryPeriod(t *testing.T) {
	a := NewAnimation(1, 5, period)
	frames := []int{a.Frame()}

	// 0.25 total: two full periods then a partial one
	for _, dt := range []time.Duration{period, period, 50 * time.Millisecond} {
		a.Update(dt)
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{1, 2, 3, 3}, frames)
	assert.Equal(t, 50*time.Millisecond, a.Elapsed())
}

func TestLongTickStepsOnce(t *testing.T) {
	a := NewAnimation(1, 5, period)

	assert.True(t, a.Update(350*time.Millisecond))
	assert.Equal(t, 2, a.Frame())
	assert.Equal(t, 50*time.Millisecond, a.Elapsed())
}

func TestWrapsFromLastToFirst(t *testing.T) {
	a := NewAnimation(1, 5, period)
	a.SetFrame(5)

	a.Update(period)
	assert.Equal(t, 1, a.Frame())
	assert.True(t, a.Looped)

	a.Update(period)
	assert.Equal(t, 2, a.Frame())
}

func TestFullCycle(t *testing.T) {
	a := NewAnimation(1, 5, period)
	var seen []int
	for i := 0; i < 6; i++ {
		a.Update(period)
		seen = append(seen, a.Frame())
	}
	assert.Equal(t, []int{2, 3, 4, 5, 1, 2}, seen)
}

func TestZeroPeriodIsInert(t *testing.T) {
	a := NewAnimation(1, 5, 0)
	assert.False(t, a.Update(time.Second))
	assert.Equal(t, 1, a.Frame())
}
