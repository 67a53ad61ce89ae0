package gql

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fuse/internal/core/ports"
)

const (
	// ParserNodeID is the unique identifier for the document parser Graft node.
	ParserNodeID graft.ID = "adapter.gql.parser"
	// PrinterNodeID is the unique identifier for the document printer Graft node.
	PrinterNodeID graft.ID = "adapter.gql.printer"
	// SchemaLoaderNodeID is the unique identifier for the schema loader Graft node.
	SchemaLoaderNodeID graft.ID = "adapter.gql.schema_loader"
)

func init() {
	graft.Register(graft.Node[ports.DocumentParser]{
		ID:        ParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentParser, error) {
			return NewParser(), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentPrinter]{
		ID:        PrinterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentPrinter, error) {
			return NewPrinter(), nil
		},
	})

	graft.Register(graft.Node[ports.SchemaLoader]{
		ID:        SchemaLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaLoader, error) {
			return NewSchemaLoader(), nil
		},
	})
}
