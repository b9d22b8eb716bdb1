// Package shell provides the external batch compiler adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BatchCompileRunner = (*Runner)(nil)

// Runner implements ports.BatchCompileRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// RunBatchCompile launches the compiler configured in settings and blocks
// until it exits. Standard output is streamed to the logger line by line;
// standard error is captured for error attribution. The settings' timeout, if
// any, bounds the whole invocation.
//
// A compiler that runs and exits is reported through the result's exit code.
// Only launch and transport problems, including a hit timeout, come back as
// errors.
func (r *Runner) RunBatchCompile(ctx context.Context, settings *domain.CompileSettings) (domain.CompileResult, error) {
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, settings.Executable, settings.Arguments...) //nolint:gosec // command comes from the settings file
	if settings.WorkingDir != "" {
		cmd.Dir = settings.WorkingDir
	}

	var stderr bytes.Buffer
	cmd.Stdout = &logWriter{logger: r.logger}
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return domain.CompileResult{ExitCode: 0, StandardError: stderr.String()}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.CompileResult{}, zerr.With(
			zerr.Wrap(ctxErr, "batch compiler did not finish in time"),
			"executable", settings.Executable)
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return domain.CompileResult{}, zerr.With(
			zerr.Wrap(err, "failed to launch batch compiler"),
			"executable", settings.Executable)
	}

	return domain.CompileResult{
		ExitCode:      exitErr.ExitCode(),
		StandardError: stderr.String(),
	}, nil
}

// logWriter forwards process output to the logger, one line per call.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.logger.Info(line)
	}
	return len(p), nil
}
