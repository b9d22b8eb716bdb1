package ports

import "github.com/precomp/precomp/internal/core/domain"

// SettingsLoader defines the interface for the upstream component that builds
// the initial list of test contexts from a settings file.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path and returns the test contexts it
	// describes. Contexts from one file share a single CompileSettings value.
	Load(path string) ([]*domain.TestContext, error)
}
