// Package dispatcher resolves mutation names and component ids to merged mutation strings.
package dispatcher

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/fuse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Dispatcher serves merged mutation strings for sets of requesting components.
// It owns the merge cache; the cache lives and dies with the Dispatcher.
type Dispatcher struct {
	registry ports.ListenerRegistry
	logger   ports.Logger
	tracer   ports.Tracer
	metrics  ports.Metrics
	cache    *Cache

	mu     sync.RWMutex
	schema *domain.Schema
	merger ports.MutationMerger
	// generation is bumped by every Configure that changes schema or merger.
	generation uint64

	mergeGroup singleflight.Group
}

// New creates a Dispatcher. It cannot merge until Configure installs a schema and merger.
func New(
	registry ports.ListenerRegistry,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		tracer:   tracer,
		metrics:  metrics,
		cache:    NewCache(),
	}
}

// Configure installs the schema and merger used on cache misses.
// Cached merges are dropped when either changes.
func (d *Dispatcher) Configure(schema *domain.Schema, merger ports.MutationMerger) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.schema == schema && d.merger == merger {
		return
	}
	d.schema = schema
	d.merger = merger
	d.generation++
	d.cache.Clear()
}

// Cache returns the dispatcher's merge cache.
func (d *Dispatcher) Cache() *Cache {
	return d.cache
}

// CreateMutationString returns the single mutation document satisfying every component in
// componentIDs for mutationName.
//
// One component, or components that all registered the same document, get that document
// back verbatim without touching the cache. Otherwise the distinct documents are merged,
// and the result is cached under mutationName until a different set of documents is requested.
func (d *Dispatcher) CreateMutationString(
	ctx context.Context,
	mutationName string,
	componentIDs []string,
) (result string, err error) {
	_, span := d.tracer.Start(ctx, "dispatcher.create_mutation_string")
	defer span.End()
	span.SetAttribute("fuse.mutation", mutationName)
	span.SetAttribute("fuse.components", len(componentIDs))

	outcome := domain.OutcomeFailed
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.SetAttribute("fuse.outcome", string(outcome))
		d.metrics.ObserveResolve(mutationName, outcome)
	}()

	if len(componentIDs) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrNoComponents, mutationName), "mutation", mutationName)
	}

	if len(componentIDs) == 1 {
		listener, err := d.registry.Listener(mutationName, componentIDs[0])
		if err != nil {
			return "", err
		}
		outcome = domain.OutcomeSingleComponent
		return listener.Mutation, nil
	}

	set := domain.NewMutationStringSet()
	for _, id := range componentIDs {
		listener, err := d.registry.Listener(mutationName, id)
		if err != nil {
			return "", err
		}
		set.Add(listener.Mutation)
	}

	if set.Len() == 1 {
		mutation, _ := set.First()
		outcome = domain.OutcomeIdenticalDocuments
		return mutation, nil
	}

	if cached, ok := d.cache.Lookup(mutationName, set); ok {
		d.logger.Debug("using cached merge for " + mutationName)
		outcome = domain.OutcomeCacheHit
		return cached, nil
	}

	merged, err := d.merge(mutationName, set)
	if err != nil {
		return "", err
	}
	outcome = domain.OutcomeMerged
	return merged, nil
}

// merge runs a cache miss merge. Concurrent misses for the same name and set share one merge.
func (d *Dispatcher) merge(mutationName string, set *domain.MutationStringSet) (string, error) {
	d.mu.RLock()
	schema, merger, generation := d.schema, d.merger, d.generation
	d.mu.RUnlock()

	if schema == nil || merger == nil {
		return "", zerr.With(zerr.Wrap(domain.ErrSchemaNotConfigured, "cannot merge "+mutationName),
			"mutation", mutationName)
	}

	key := strconv.FormatUint(generation, 10) + "\x01" + mutationName + "\x01" + set.Key()
	result, err, _ := d.mergeGroup.Do(key, func() (any, error) {
		if cached, ok := d.cache.Lookup(mutationName, set); ok {
			return cached, nil
		}

		start := time.Now()
		merged, err := merger.MergeSet(set, schema)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to merge "+mutationName), "mutation", mutationName)
		}
		d.metrics.ObserveMerge(mutationName, set.Len(), time.Since(start))

		d.store(generation, mutationName, &domain.CacheEntry{FullMutation: merged, SetKey: set})
		d.logger.Debug("merged " + mutationName + " from distinct documents")
		return merged, nil
	})
	if err != nil {
		return "", err
	}
	merged, _ := result.(string)
	return merged, nil
}

// store caches entry unless Configure ran since the merge read its schema and merger.
// The read lock keeps Configure from clearing the cache between the check and the write.
func (d *Dispatcher) store(generation uint64, mutationName string, entry *domain.CacheEntry) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.generation != generation {
		d.logger.Debug("discarding merge of " + mutationName + " built before reconfiguration")
		return
	}
	d.cache.Set(mutationName, entry)
}
