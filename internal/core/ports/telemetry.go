package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans. The orchestrator opens one
// span per settings group.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// Skipped marks the span's work as skipped because it was up to date.
	Skipped()
	// RecordError records an error for the span.
	RecordError(err error)
	// End completes the span.
	End()
}
