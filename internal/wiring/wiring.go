// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/precomp/precomp/internal/adapters/config"
	_ "github.com/precomp/precomp/internal/adapters/fs"
	_ "github.com/precomp/precomp/internal/adapters/logger"
	_ "github.com/precomp/precomp/internal/adapters/shell"
	_ "github.com/precomp/precomp/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/precomp/precomp/internal/app"
	_ "github.com/precomp/precomp/internal/engine/batch"
)
