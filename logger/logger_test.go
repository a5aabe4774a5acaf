package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsNop(t *testing.T) {
	require.NotNil(t, L())
	assert.NotPanics(t, func() { L().Info("discarded") })
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	_, err := Init("loud")
	assert.Error(t, err)
}

func TestSetReplacesGlobal(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Set(prev) })

	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	L().Info("mob spawned", zap.Int("count", 1))
	L().Debug("filtered")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "mob spawned", logs.All()[0].Message)
}

func TestInitReplacesEarlierLogger(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Set(prev) })

	first, err := Init("info")
	require.NoError(t, err)
	second, err := Init("debug")
	require.NoError(t, err)

	assert.Same(t, second, L())
	assert.NotSame(t, first, L())
	assert.True(t, L().Core().Enabled(zap.DebugLevel))

	// A bad level leaves the last good logger in place
	_, err = Init("loud")
	require.Error(t, err)
	assert.Same(t, second, L())
}
