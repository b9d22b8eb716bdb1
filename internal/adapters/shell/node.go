package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/precomp/precomp/internal/adapters/logger"
	"github.com/precomp/precomp/internal/core/ports"
)

const NodeID graft.ID = "adapter.batch_compile_runner"

func init() {
	graft.Register(graft.Node[ports.BatchCompileRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BatchCompileRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
