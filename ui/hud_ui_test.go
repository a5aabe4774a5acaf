package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountText(t *testing.T) {
	assert.Equal(t, "0 mobs", CountText(0))
	assert.Equal(t, "1 mob", CountText(1))
	assert.Equal(t, "12 mobs", CountText(12))
}

func TestRateText(t *testing.T) {
	assert.Equal(t, "TPS 60  FPS 59", RateText(60, 59.4))
}
