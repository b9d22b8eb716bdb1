// Package ports defines the core interfaces for the application.
package ports

import "time"

// FileSystem defines the interface for the file-system queries the batch
// compiler needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether the path names an existing file.
	Exists(path string) bool

	// LastWriteTime returns the last modification time of path. Errors
	// surface as the zero time.
	LastWriteTime(path string) time.Time
}
