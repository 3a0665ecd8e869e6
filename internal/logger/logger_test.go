package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestUseCapturesEntries(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := Use(zap.New(core).Sugar())
	defer restore()

	Infow("No values, skipping", "source", "Account.Status__c")
	Warnw("duplicate constant", "class", "AccountStatus")
	Debugw("reading", "path", "a.xml")

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "No values, skipping", entries[0].Message)
	assert.Equal(t, "Account.Status__c", entries[0].ContextMap()["source"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestInitialize(t *testing.T) {
	restore := Use(Logger)
	defer restore()

	require.NoError(t, Initialize(false, true))
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(true, false))
	assert.False(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))
}
