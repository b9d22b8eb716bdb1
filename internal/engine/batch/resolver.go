// Package batch implements the staleness-driven batch compile engine.
package batch

import (
	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
)

// PropertyResolver resolves a path to its existence flag and last write time.
type PropertyResolver struct {
	fs ports.FileSystem
}

// NewPropertyResolver creates a new PropertyResolver.
func NewPropertyResolver(fs ports.FileSystem) *PropertyResolver {
	return &PropertyResolver{fs: fs}
}

// Resolve returns the file properties of path. An empty path yields the empty
// sentinel (no existence, zero timestamp) without touching the file system;
// it is used for sources that have no configured output. File-system errors
// surface as non-existence.
func (r *PropertyResolver) Resolve(path string) domain.FileProperties {
	if path == "" {
		return domain.FileProperties{}
	}

	props := domain.FileProperties{Path: path}
	if !r.fs.Exists(path) {
		return props
	}

	props.Exists = true
	props.LastModified = r.fs.LastWriteTime(path)
	return props
}
