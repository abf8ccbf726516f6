package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLogger_PrefersRequestScopedLogger(t *testing.T) {
	scoped := zap.NewNop().Named("request")
	fallback := zap.NewNop().Named("service")

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLogger(ctx, fallback))
}

func TestGetLogger_FallsBackWhenAbsent(t *testing.T) {
	fallback := zap.NewNop().Named("service")

	assert.Same(t, fallback, GetLogger(context.Background(), fallback))

	// Never nil, even with nothing to fall back on.
	assert.NotNil(t, GetLogger(context.Background(), nil))
}

func TestActorID_RoundTrip(t *testing.T) {
	ctx := WithActorID(context.Background(), "SUB00001")
	assert.Equal(t, "SUB00001", GetActorID(ctx))
	assert.Equal(t, "", GetActorID(context.Background()))
}
