// Package telemetry provides tracer implementations for compile progress.
package telemetry

import (
	"context"

	"github.com/precomp/precomp/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// Skipped does nothing.
func (s *NoOpSpan) Skipped() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// End does nothing.
func (s *NoOpSpan) End() {}

// Write does nothing and reports p as written.
func (s *NoOpSpan) Write(p []byte) (n int, err error) {
	return len(p), nil
}
