package ports

import (
	"context"

	"github.com/precomp/precomp/internal/core/domain"
)

// BatchCompileRunner defines the interface for the external compiler process.
//
// RunBatchCompile blocks until the process exits and returns its exit code
// and captured standard error. A non-nil error indicates the process could
// not be launched or communicated with at all; compiler rejections are
// reported through the result's exit code instead.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type BatchCompileRunner interface {
	RunBatchCompile(ctx context.Context, settings *domain.CompileSettings) (domain.CompileResult, error)
}
