package logger

import (
	"context"
	"testing"

	"studyshare/internal/reqctx"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCtx(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })

	uid := uuid.New()
	ctx := reqctx.WithRequestID(context.Background(), "req-1")
	ctx = reqctx.WithUser(ctx, uid, "admin")

	WithCtx(ctx).Info("hello")
	WithCtx(context.Background()).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, uid.String(), fields["user_id"])
	assert.Empty(t, entries[1].ContextMap())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}
