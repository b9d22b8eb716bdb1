package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker runs the external compiler for one settings group, exactly once,
// with no retries.
type Invoker struct {
	runner ports.BatchCompileRunner
	logger ports.Logger
}

// NewInvoker creates a new Invoker.
func NewInvoker(runner ports.BatchCompileRunner, logger ports.Logger) *Invoker {
	return &Invoker{runner: runner, logger: logger}
}

// Invoke runs the batch compile described by settings. A positive exit code
// or a failure to launch the process both surface as
// domain.ErrCompilationFailed, carrying the captured error text and the
// settings file for attribution; lower-level errors are chained, never
// returned raw.
func (i *Invoker) Invoke(ctx context.Context, settings *domain.CompileSettings) error {
	i.logger.Info(fmt.Sprintf("batch compiling sources for %s", settings.SettingsFile))

	result, err := i.runner.RunBatchCompile(ctx, settings)
	if err != nil {
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrCompilationFailed, err), "failed to invoke batch compiler"),
			"settings_file", settings.SettingsFile)
	}

	if result.ExitCode > 0 {
		failure := zerr.Wrap(domain.ErrCompilationFailed, result.StandardError)
		failure = zerr.With(failure, "settings_file", settings.SettingsFile)
		return zerr.With(failure, "exit_code", result.ExitCode)
	}

	return nil
}
