package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLevels(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	tests := []struct {
		level string
		debug bool
		warn  bool
	}{
		{level: "debug", debug: true, warn: true},
		{level: "info", debug: false, warn: true},
		{level: "error", debug: false, warn: false},
		{level: "bogus", debug: false, warn: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Initialize(tt.level))
			assert.Equal(t, tt.debug, Log.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warn, Log.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	Sync()
}
