package domain

import (
	"slices"
	"strings"
)

// MutationStringSet is a set of distinct mutation document strings.
// It is the unit of cache identity: two requests whose components resolve to the
// same distinct strings share a set, whatever the component ids or their order.
// Insertion order is kept so the first requested document drives merge tie-breaks.
type MutationStringSet struct {
	members     map[DocumentText]struct{}
	order       []DocumentText
	fingerprint uint64
}

// NewMutationStringSet creates a set from mutations, collapsing duplicates.
func NewMutationStringSet(mutations ...string) *MutationStringSet {
	s := &MutationStringSet{
		members: make(map[DocumentText]struct{}, len(mutations)),
	}
	for _, m := range mutations {
		s.Add(m)
	}
	return s
}

// Add inserts mutation and reports whether it was not already present.
func (s *MutationStringSet) Add(mutation string) bool {
	key := InternDocument(mutation)
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = struct{}{}
	s.order = append(s.order, key)
	// Summing member hashes keeps the fingerprint independent of insertion order.
	s.fingerprint += key.Hash()
	return true
}

// Len returns the number of distinct strings.
func (s *MutationStringSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Has reports whether mutation is a member.
func (s *MutationStringSet) Has(mutation string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[InternDocument(mutation)]
	return ok
}

// Strings returns the members in insertion order.
func (s *MutationStringSet) Strings() []string {
	if s == nil {
		return nil
	}
	res := make([]string, len(s.order))
	for i, m := range s.order {
		res[i] = m.String()
	}
	return res
}

// First returns the first inserted member.
func (s *MutationStringSet) First() (string, bool) {
	if s.Len() == 0 {
		return "", false
	}
	return s.order[0].String(), true
}

// Fingerprint returns an order-independent hash of the members.
// Equal sets have equal fingerprints; the converse does not hold.
func (s *MutationStringSet) Fingerprint() uint64 {
	if s == nil {
		return 0
	}
	return s.fingerprint
}

// Equal reports whether s and other hold exactly the same strings.
// Membership is checked by content, never by identity or order.
func (s *MutationStringSet) Equal(other *MutationStringSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Fingerprint() != other.Fingerprint() {
		return false
	}
	for _, m := range other.order {
		if _, ok := s.members[m]; !ok {
			return false
		}
	}
	return true
}

// Key returns an exact, order-independent string key for the set.
func (s *MutationStringSet) Key() string {
	members := s.Strings()
	slices.Sort(members)
	return strings.Join(members, "\x00")
}
