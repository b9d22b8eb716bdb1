// Package app implements the application layer for precomp.
package app

import (
	"context"

	"github.com/precomp/precomp/internal/core/ports"
	"github.com/precomp/precomp/internal/engine/batch"
	"go.trai.ch/zerr"
)

// App ties the settings loader to the batch compile orchestrator.
type App struct {
	loader       ports.SettingsLoader
	orchestrator *batch.Orchestrator
}

// New creates a new App instance.
func New(loader ports.SettingsLoader, orchestrator *batch.Orchestrator) *App {
	return &App{
		loader:       loader,
		orchestrator: orchestrator,
	}
}

// Run loads the test contexts from settingsPath and drives the batch compile
// over them. A compilation failure of any settings group aborts the run.
func (a *App) Run(ctx context.Context, settingsPath string) error {
	contexts, err := a.loader.Load(settingsPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	if err := a.orchestrator.Compile(ctx, contexts); err != nil {
		return zerr.With(zerr.Wrap(err, "batch compile failed"), "settings_path", settingsPath)
	}

	return nil
}
