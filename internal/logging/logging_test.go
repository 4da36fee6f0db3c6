package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level     string
		enabled   zapcore.Level
		disabled  zapcore.Level
		wantError bool
	}{
		{level: "", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{level: "debug", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{level: "warn", enabled: zapcore.ErrorLevel, disabled: zapcore.InfoLevel},
		{level: "loud", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}
