// Package domain contains the core types of the mutation merge engine.
package domain

// CacheEntry is the merged mutation remembered for one mutation name.
type CacheEntry struct {
	// FullMutation is the printed merged document.
	FullMutation string
	// SetKey is the set of document strings FullMutation was merged from.
	SetKey *MutationStringSet
}

// Matches reports whether the entry was merged from exactly the strings in set.
func (e *CacheEntry) Matches(set *MutationStringSet) bool {
	if e == nil || e.SetKey == nil {
		return false
	}
	return e.SetKey.Equal(set)
}

// ResolveOutcome describes how a mutation string request was satisfied.
type ResolveOutcome string

const (
	// OutcomeSingleComponent means exactly one component asked and its document was returned as is.
	OutcomeSingleComponent ResolveOutcome = "single_component"
	// OutcomeIdenticalDocuments means every component asked for the same document.
	OutcomeIdenticalDocuments ResolveOutcome = "identical_documents"
	// OutcomeCacheHit means the merged document was served from the cache.
	OutcomeCacheHit ResolveOutcome = "cache_hit"
	// OutcomeMerged means the documents were parsed, merged and cached.
	OutcomeMerged ResolveOutcome = "merged"
	// OutcomeFailed means the request returned an error.
	OutcomeFailed ResolveOutcome = "failed"
)
