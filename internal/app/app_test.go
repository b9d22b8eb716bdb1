package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/precomp/precomp/internal/app"
	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports/mocks"
	"github.com/precomp/precomp/internal/engine/batch"
)

func newApp(t *testing.T, loader *mocks.MockSettingsLoader) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileSystem(ctrl)
	runner := mocks.NewMockBatchCompileRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)

	return app.New(loader, batch.NewOrchestrator(fs, runner, logger, tracer))
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)
	loader.EXPECT().Load("precomp.yaml").Return([]*domain.TestContext{
		{TestFile: "test/plain_test.html"},
	}, nil)

	a := newApp(t, loader)
	require.NoError(t, a.Run(context.Background(), "precomp.yaml"))
}

func TestApp_Run_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)
	loader.EXPECT().Load("broken.yaml").Return(nil, zerr.New("failed to parse settings file"))

	a := newApp(t, loader)
	err := a.Run(context.Background(), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
}

func TestApp_Run_CompileError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)

	settings := &domain.CompileSettings{
		SettingsFile: "/proj/precomp.yaml",
		SourceDir:    "/proj/src",
		OutDir:       "/proj/build",
		Extensions:   []string{".ts"},
		Executable:   "tsc",
	}
	loader.EXPECT().Load("/proj/precomp.yaml").Return([]*domain.TestContext{
		{
			TestFile: "/proj/test/calc_test.html",
			Settings: settings,
			ReferencedFiles: []*domain.ReferencedFile{
				{Path: "/proj/src/calc.ts"},
			},
		},
	}, nil)

	ctrl2 := gomock.NewController(t)
	fs := mocks.NewMockFileSystem(ctrl2)
	fs.EXPECT().Exists(gomock.Any()).Return(false).AnyTimes()
	runner := mocks.NewMockBatchCompileRunner(ctrl2)
	runner.EXPECT().RunBatchCompile(gomock.Any(), settings).
		Return(domain.CompileResult{ExitCode: 2, StandardError: "boom"}, nil)
	logger := mocks.NewMockLogger(ctrl2)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl2)
	span := mocks.NewMockSpan(ctrl2)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), span)
	span.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()

	a := app.New(loader, batch.NewOrchestrator(fs, runner, logger, tracer))
	err := a.Run(context.Background(), "/proj/precomp.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompilationFailed)
	assert.Contains(t, err.Error(), "batch compile failed")
}
