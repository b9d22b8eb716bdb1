package shell_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/precomp/precomp/internal/adapters/shell"
	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports/mocks"
)

func newRunnerFixture(t *testing.T) (*shell.Runner, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := mocks.NewMockLogger(ctrl)
	return shell.NewRunner(mockLogger), mockLogger
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive sh directly")
	}
}

func TestRunner_Success(t *testing.T) {
	skipOnWindows(t)
	runner, mockLogger := newRunnerFixture(t)
	mockLogger.EXPECT().Info("compiled").Times(1)

	settings := &domain.CompileSettings{
		SettingsFile: "/proj/precomp.yaml",
		Executable:   "sh",
		Arguments:    []string{"-c", "echo compiled"},
	}

	result, err := runner.RunBatchCompile(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Empty(t, result.StandardError)
}

func TestRunner_NonZeroExitWithStderr(t *testing.T) {
	skipOnWindows(t)
	runner, _ := newRunnerFixture(t)

	settings := &domain.CompileSettings{
		Executable: "sh",
		Arguments:  []string{"-c", "echo 'syntax error' >&2; exit 1"},
	}

	result, err := runner.RunBatchCompile(context.Background(), settings)
	require.NoError(t, err, "a compiler that exits is not a transport error")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.StandardError, "syntax error")
}

func TestRunner_MissingExecutable(t *testing.T) {
	runner, _ := newRunnerFixture(t)

	settings := &domain.CompileSettings{
		Executable: "definitely-not-a-compiler-1f2e3d",
	}

	_, err := runner.RunBatchCompile(context.Background(), settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to launch batch compiler")
}

func TestRunner_TimeoutIsTransportError(t *testing.T) {
	skipOnWindows(t)
	runner, _ := newRunnerFixture(t)

	settings := &domain.CompileSettings{
		Executable: "sh",
		Arguments:  []string{"-c", "sleep 5"},
		Timeout:    50 * time.Millisecond,
	}

	_, err := runner.RunBatchCompile(context.Background(), settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "did not finish in time")
}

func TestRunner_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	runner, _ := newRunnerFixture(t)
	tmpDir := t.TempDir()

	settings := &domain.CompileSettings{
		Executable: "sh",
		Arguments:  []string{"-c", "touch compiled.js"},
		WorkingDir: tmpDir,
	}

	result, err := runner.RunBatchCompile(context.Background(), settings)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.FileExists(t, filepath.Join(tmpDir, "compiled.js"))
}
