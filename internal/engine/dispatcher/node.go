package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fuse/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fuse/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fuse/internal/adapters/registry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fuse/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fuse/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			listeners, err := graft.Dep[ports.ListenerRegistry](ctx)
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

			recorder, err := graft.Dep[*metrics.Prometheus](ctx)
			if err != nil {
				return nil, err
			}

			return New(listeners, log, tracer, recorder), nil
		},
	})
}
