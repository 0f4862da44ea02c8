package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func TestInitTracer_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitTracer("agent-models-test", "v0.0.1", zap.NewNop(), &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "registry.ResolveAlias")
	span.End()

	// shutdown flushes the batcher
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "registry.ResolveAlias")
	assert.Contains(t, buf.String(), "agent-models-test")
}
