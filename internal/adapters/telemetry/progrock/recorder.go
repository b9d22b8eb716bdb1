// Package progrock provides the Progrock-backed tracer for compile progress.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/precomp/precomp/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer on top of a progrock recording session.
// Every settings group becomes one vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start opens a vertex named name.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// span implements ports.Span wrapping a *progrock.VertexRecorder.
type span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards to the vertex's stdout stream.
func (s *span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// Skipped marks the vertex as a cache hit; progrock has no separate skip
// state.
func (s *span) Skipped() {
	s.vertex.Cached()
}

// RecordError stores err so End completes the vertex as failed.
func (s *span) RecordError(err error) {
	s.err = err
}

// End completes the vertex with the recorded error, if any.
func (s *span) End() {
	s.vertex.Done(s.err)
}
