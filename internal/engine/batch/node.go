package batch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/precomp/precomp/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/precomp/precomp/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/precomp/precomp/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"github.com/precomp/precomp/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/precomp/precomp/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.batch"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			shell.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.BatchCompileRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(filesystem, runner, log, tracer), nil
		},
	})
}
