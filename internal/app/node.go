package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fuse/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fuse/internal/adapters/gql"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fuse/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fuse/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fuse/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fuse/internal/core/ports"
	"go.trai.ch/fuse/internal/engine/dispatcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gql.SchemaLoaderNodeID,
			gql.ParserNodeID,
			gql.PrinterNodeID,
			registry.NodeID,
			dispatcher.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			schemaLoader, err := graft.Dep[ports.SchemaLoader](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.DocumentParser](ctx)
			if err != nil {
				return nil, err
			}

			printer, err := graft.Dep[ports.DocumentPrinter](ctx)
			if err != nil {
				return nil, err
			}

			listeners, err := graft.Dep[ports.ListenerRegistry](ctx)
			if err != nil {
				return nil, err
			}

			disp, err := graft.Dep[*dispatcher.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.Prometheus](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, schemaLoader, parser, printer, listeners, disp, log, recorder), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}
