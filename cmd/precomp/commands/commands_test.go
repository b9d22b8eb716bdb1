package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/precomp/precomp/cmd/precomp/commands"
	"github.com/precomp/precomp/internal/app"
	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports/mocks"
	"github.com/precomp/precomp/internal/engine/batch"
)

func newCLI(t *testing.T, loader *mocks.MockSettingsLoader) *commands.CLI {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)
	mockRunner := mocks.NewMockBatchCompileRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockTracer := mocks.NewMockTracer(ctrl)

	a := app.New(loader, batch.NewOrchestrator(mockFS, mockRunner, mockLogger, mockTracer))
	return commands.New(a)
}

func TestRun_DefaultSettingsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load(commands.DefaultSettingsFile).Return([]*domain.TestContext{
		{TestFile: "test/plain_test.html"},
	}, nil).Times(1)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_ExplicitSettingsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load("custom.yaml").Return(nil, nil).Times(1)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"run", "custom.yaml"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_ConfigFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load("flagged.yaml").Return(nil, nil).Times(1)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"run", "--config", "flagged.yaml"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_PositionalOverridesConfigFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load("positional.yaml").Return(nil, nil).Times(1)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"run", "-c", "flagged.yaml", "positional.yaml"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLoader.EXPECT().Load(commands.DefaultSettingsFile).Return(nil, zerr.New("failed to read settings file")).Times(1)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	if err == nil {
		t.Error("Expected an error for a broken settings file, got nil")
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"--help"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSettingsLoader(ctrl)

	cli := newCLI(t, mockLoader)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error for version, got: %v", err)
	}
}
