package ports

import "go.trai.ch/fuse/internal/core/domain"

// SchemaLoader loads the schema the merge engine validates against.
//
//go:generate go run go.uber.org/mock/mockgen -source=schema_loader.go -destination=mocks/mock_schema_loader.go -package=mocks
type SchemaLoader interface {
	// Load reads the schema file at path.
	Load(path string) (*domain.Schema, error)
}
