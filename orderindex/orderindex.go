// Package orderindex implements the insertion-order log that can be
// attached to a HAMT map or set to yield ordered iteration in amortised
// linear time, with lazy compaction of tombstones.
package orderindex

import (
	"github.com/SylphxAI/Pura/hamt"
	"github.com/SylphxAI/Pura/owner"
	"github.com/SylphxAI/Pura/vec"
)

// compactMinSize, with the holes > next/2 test in Delete, gates
// compaction: a delete recompacts
// once more than half the slots are tombstoned and the log has grown past
// a small floor, matching spec's "holes > 0.5*next and next > 32".
const compactMinSize = 32

type slot[K any] struct {
	key     K
	deleted bool
}

// Index tracks insertion order for keys of type K, optionally carrying a
// parallel value log for ordered maps (hasValues == true); ordered sets
// leave idxToVal empty and hasValues == false.
type Index[K comparable, V any] struct {
	next      int
	keyToIdx  hamt.Map[K, int]
	idxToKey  vec.Vec[slot[K]]
	idxToVal  vec.Vec[V]
	holes     int
	hasValues bool
}

// New returns an empty Index. hasValues selects whether a parallel value
// log is maintained (ordered maps) or not (ordered sets).
func New[K comparable, V any](hasValues bool) Index[K, V] {
	return Index[K, V]{
		keyToIdx:  hamt.Empty[K, int](),
		idxToKey:  vec.Empty[slot[K]](),
		idxToVal:  vec.Empty[V](),
		hasValues: hasValues,
	}
}

// Len returns the number of live entries.
func (ix Index[K, V]) Len() int { return ix.keyToIdx.Size() }

// Has reports whether k has a live slot.
func (ix Index[K, V]) Has(k K) bool { return ix.keyToIdx.Has(k) }

// Get returns the value stored for k and true. An index without a value
// log (an ordered set) returns the zero value and whether k is present;
// an absent k yields the zero value and false.
func (ix Index[K, V]) Get(k K) (V, bool) {
	var zero V
	idx, ok := ix.keyToIdx.Get(k)
	if !ok || !ix.hasValues {
		return zero, ok
	}
	v, _ := ix.idxToVal.Get(idx)
	return v, true
}

// Set inserts k (assigning it the next slot) or, if k is already present,
// updates its value in place without disturbing its insertion order.
func Set[K comparable, V any](ix Index[K, V], o *owner.Token, k K, v V) Index[K, V] {
	if idx, ok := ix.keyToIdx.Get(k); ok {
		if ix.hasValues {
			ix.idxToVal, _ = ix.idxToVal.Assoc(o, idx, v)
		}
		return ix
	}
	idx := ix.next
	ix.keyToIdx = hamt.Set(ix.keyToIdx, o, k, idx)
	ix.idxToKey = ix.idxToKey.Push(o, slot[K]{key: k})
	if ix.hasValues {
		ix.idxToVal = ix.idxToVal.Push(o, v)
	}
	ix.next = idx + 1
	return ix
}

// Delete removes k. If k is absent, ix is returned unchanged. Deletion
// tombstones k's slot rather than shifting later slots, and triggers a
// compaction when the tombstone ratio crosses the threshold.
func Delete[K comparable, V any](ix Index[K, V], o *owner.Token, k K) Index[K, V] {
	idx, ok := ix.keyToIdx.Get(k)
	if !ok {
		return ix
	}
	ix.keyToIdx = hamt.Delete(ix.keyToIdx, o, k)
	ix.idxToKey, _ = ix.idxToKey.Assoc(o, idx, slot[K]{deleted: true})
	ix.holes++
	if ix.holes > ix.next/2 && ix.next > compactMinSize {
		return compact(ix, o)
	}
	return ix
}

// compact rebuilds ix with tombstones removed and slots renumbered from
// zero, preserving relative insertion order.
func compact[K comparable, V any](ix Index[K, V], o *owner.Token) Index[K, V] {
	fresh := New[K, V](ix.hasValues)
	ForEach(ix, func(k K, v V) {
		fresh = Set(fresh, o, k, v)
	})
	return fresh
}

// ForEach walks live entries in insertion order.
func ForEach[K comparable, V any](ix Index[K, V], fn func(K, V)) {
	n := ix.idxToKey.Len()
	for i := 0; i < n; i++ {
		s, _ := ix.idxToKey.Get(i)
		if s.deleted {
			continue
		}
		var v V
		if ix.hasValues {
			v, _ = ix.idxToVal.Get(i)
		}
		fn(s.key, v)
	}
}

// Keys returns a range-over-func iterator over live keys in insertion
// order.
func Keys[K comparable, V any](ix Index[K, V]) func(func(K) bool) {
	return func(yield func(K) bool) {
		ok := true
		ForEach(ix, func(k K, _ V) {
			if ok {
				ok = yield(k)
			}
		})
	}
}
