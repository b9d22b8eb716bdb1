package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precomp/precomp/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "compile group")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("output"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	span.Skipped()
	span.RecordError(assert.AnError)
	span.End()
}
