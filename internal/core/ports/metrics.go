package ports

import (
	"time"

	"go.trai.ch/fuse/internal/core/domain"
)

// Metrics records merge activity.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveResolve counts one mutation string request and how it was satisfied.
	ObserveResolve(mutationName string, outcome domain.ResolveOutcome)
	// ObserveMerge records a cache miss merge of the given number of documents.
	ObserveMerge(mutationName string, documents int, elapsed time.Duration)
}
