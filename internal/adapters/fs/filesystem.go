// Package fs provides the os-backed file system adapter.
package fs

import (
	"os"
	"time"

	"github.com/precomp/precomp/internal/core/ports"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem against the real file system.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path names an existing regular file or directory.
// Stat errors of any kind count as non-existence.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LastWriteTime returns the modification time of path, or the zero time when
// the path cannot be statted.
func (f *FileSystem) LastWriteTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
