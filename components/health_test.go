package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCurrentClamps(t *testing.T) {
	h := HealthData{Current: 50, Max: 100}

	h.SetCurrent(150)
	assert.Equal(t, 100.0, h.Current)

	h.SetCurrent(-3)
	assert.Equal(t, 0.0, h.Current)
	assert.True(t, h.Depleted())

	h.SetCurrent(42)
	assert.Equal(t, 0.42, h.Ratio())
}

func TestDamage(t *testing.T) {
	h := HealthData{Current: 100, Max: 100}

	assert.Equal(t, 75.0, h.Damage(25))
	assert.False(t, h.Depleted())
	assert.Equal(t, 0.0, h.Damage(500))
	assert.True(t, h.Depleted())

	// Negative damage heals, but never past Max
	assert.Equal(t, 100.0, h.Damage(-1000))
}

func TestHealthBarFill(t *testing.T) {
	bar := HealthBarContainerData{ReferenceWidth: 100, Height: 10}

	cases := []struct {
		current, max  float64
		width, offset float64
	}{
		{100, 100, 100, 0},
		{25, 100, 25, -37.5},
		{50, 100, 50, -25},
		{0, 100, 0, -50},
		// Width follows the ratio, not the raw health
		{50, 200, 25, -37.5},
		{30, 60, 50, -25},
	}
	for _, tc := range cases {
		width, offset := bar.Fill(&HealthData{Current: tc.current, Max: tc.max})
		assert.Equal(t, tc.width, width, "width at %v/%v", tc.current, tc.max)
		assert.Equal(t, tc.offset, offset, "offset at %v/%v", tc.current, tc.max)
		// Left edge of the fill stays on the container's left edge
		assert.Equal(t, -bar.ReferenceWidth/2, offset-width/2)
	}
}
