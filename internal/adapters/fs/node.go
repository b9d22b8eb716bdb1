package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/precomp/precomp/internal/core/ports"
)

const NodeID graft.ID = "adapter.filesystem"

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewFileSystem(), nil
		},
	})
}
