package ports

import "go.trai.ch/fuse/internal/core/domain"

// MutationMerger merges a set of mutation document strings into one document string.
//
//go:generate go run go.uber.org/mock/mockgen -source=merger.go -destination=mocks/mock_merger.go -package=mocks
type MutationMerger interface {
	// MergeSet merges every member of set against schema and returns the printed result.
	MergeSet(set *domain.MutationStringSet, schema *domain.Schema) (string, error)
}
