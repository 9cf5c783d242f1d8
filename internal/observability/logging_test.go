package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizservice/internal/config"
)

func TestNewLogger_NilConfig(t *testing.T) {
	logger := NewLogger(nil)
	require.NotNil(t, logger)

	// No-op logger must accept every level without panicking
	ctx := context.Background()
	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error", errors.New("boom"))
}

func TestNewLogger_NoEndpoint(t *testing.T) {
	logger := NewLogger(&config.OpenTelemetryConfig{EnableLogging: true})
	require.NotNil(t, logger)

	logger.Info(context.Background(), "message", map[string]interface{}{"key": "value"})
}

func TestLogger_NilAndMergedFields(t *testing.T) {
	logger := NewNopLogger()
	ctx := context.Background()

	logger.Info(ctx, "nil fields", nil)
	logger.Info(ctx, "multiple maps",
		map[string]interface{}{"a": 1},
		nil,
		map[string]interface{}{"b": 2},
	)
	logger.Error(ctx, "nil error", nil)
}

func TestLogger_MergeFields(t *testing.T) {
	logger := NewNopLogger()

	merged := logger.mergeFields(
		map[string]interface{}{"a": 1, "b": 1},
		map[string]interface{}{"b": 2},
	)

	assert.Equal(t, 1, merged["a"])
	assert.Equal(t, 2, merged["b"])
}

func TestGetGlobalTracer_Fallback(t *testing.T) {
	globalTracer = nil
	assert.NotNil(t, GetGlobalTracer())
}
