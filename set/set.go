// Package set implements the persistent unordered set as spec'd: a thin
// wrapper over package hamt's Map with unit values.
package set

import (
	"github.com/SylphxAI/Pura/hamt"
	"github.com/SylphxAI/Pura/owner"
)

// unit is the value type backing every entry; a set only ever cares about
// key presence.
type unit struct{}

// Set is a persistent unordered set of K.
type Set[K comparable] struct {
	m hamt.Map[K, unit]
}

// Empty returns the empty set.
func Empty[K comparable]() Set[K] { return Set[K]{} }

// FromSlice builds a Set holding the distinct elements of xs.
func FromSlice[K comparable](xs []K) Set[K] {
	s := Empty[K]()
	o := owner.New()
	for _, x := range xs {
		s = Add(s, o, x)
	}
	return s
}

// Size returns the number of elements.
func (s Set[K]) Size() int { return s.m.Size() }

// Has reports whether k is a member.
func (s Set[K]) Has(k K) bool { return s.m.Has(k) }

// ForEach calls fn with every member, in unspecified order.
func (s Set[K]) ForEach(fn func(K)) {
	s.m.ForEach(func(k K, _ unit) { fn(k) })
}

// Add returns a set with k present. If k is already a member, s is
// returned unchanged.
func Add[K comparable](s Set[K], o *owner.Token, k K) Set[K] {
	m := hamt.Set(s.m, o, k, unit{})
	if m == s.m {
		return s
	}
	return Set[K]{m: m}
}

// Remove returns a set without k. If k is absent, s is returned unchanged.
func Remove[K comparable](s Set[K], o *owner.Token, k K) Set[K] {
	m := hamt.Delete(s.m, o, k)
	if m == s.m {
		return s
	}
	return Set[K]{m: m}
}
