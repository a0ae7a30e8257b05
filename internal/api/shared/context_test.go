package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"session-todo/internal/api/shared"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())

	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, shared.TraceIDLength*2, "trace ID should be hex-encoded")

	// A fresh context carries no trace ID.
	assert.Empty(t, shared.GetTraceID(context.Background()))

	// Each call generates a distinct ID.
	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}
