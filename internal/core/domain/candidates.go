// internal/core/domain/candidates.go
package domain

import "sort"

// SeedKeyword is a lowercase token extracted from a target's public content.
type SeedKeyword string

// CandidateSet is an unordered, deduplicated set of password candidates.
// The zero value is not usable; use NewCandidateSet.
type CandidateSet struct {
	items map[string]struct{}
}

// NewCandidateSet creates a set holding the given candidates.
func NewCandidateSet(candidates ...string) CandidateSet {
	cs := CandidateSet{items: make(map[string]struct{}, len(candidates))}
	for _, c := range candidates {
		cs.items[c] = struct{}{}
	}
	return cs
}

// Add inserts a candidate. Returns true if it was not present.
func (cs CandidateSet) Add(candidate string) bool {
	if _, ok := cs.items[candidate]; ok {
		return false
	}
	cs.items[candidate] = struct{}{}
	return true
}

// Union adds every candidate of other into cs.
func (cs CandidateSet) Union(other CandidateSet) {
	for c := range other.items {
		cs.items[c] = struct{}{}
	}
}

// Contains reports whether candidate is in the set.
func (cs CandidateSet) Contains(candidate string) bool {
	_, ok := cs.items[candidate]
	return ok
}

// Len returns the number of distinct candidates.
func (cs CandidateSet) Len() int {
	return len(cs.items)
}

// Clone returns an independent copy. Attacks receive clones so later changes
// to the original never leak into a running attack.
func (cs CandidateSet) Clone() CandidateSet {
	out := CandidateSet{items: make(map[string]struct{}, len(cs.items))}
	for c := range cs.items {
		out.items[c] = struct{}{}
	}
	return out
}

// Sorted returns the candidates in lexical order.
func (cs CandidateSet) Sorted() []string {
	out := make([]string, 0, len(cs.items))
	for c := range cs.items {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
