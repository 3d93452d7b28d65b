// Package hamt implements the persistent unordered map: a bitmap-indexed
// hash trie with leaves and collision buckets, edited under the transient
// owner-token protocol shared with package vec.
package hamt

import (
	"github.com/SylphxAI/Pura/bits"
	"github.com/SylphxAI/Pura/hash"
	"github.com/SylphxAI/Pura/internal/invariant"
	"github.com/SylphxAI/Pura/owner"
)

// Map is an immutable, unordered K -> V map. The zero value is the empty
// map.
type Map[K comparable, V any] struct {
	size int
	root *node[K, V]
}

// Empty returns the empty map. Map's zero value is already empty; Empty
// exists for symmetry with vec.Empty and readability at call sites.
func Empty[K comparable, V any]() Map[K, V] {
	return Map[K, V]{}
}

// Size returns the number of entries.
func (m Map[K, V]) Size() int { return m.size }

// Get returns the value for k and true, or the zero value and false.
func (m Map[K, V]) Get(k K) (V, bool) {
	var zero V
	n := m.root
	h := hash.Of(k)
	shift := uint(0)
	for n != nil {
		switch n.kind {
		case kindLeaf:
			if n.leaf.key == k {
				return n.leaf.val, true
			}
			return zero, false
		case kindCollision:
			for _, e := range n.bucket {
				if e.key == k {
					return e.val, true
				}
			}
			return zero, false
		default: // kindBranch
			idx := childIndex(h, shift)
			bit := uint32(1) << idx
			if n.bitmap&bit == 0 {
				return zero, false
			}
			n = n.children[popBelow(n.bitmap, idx)]
			shift += bits.BitsPerLevel
		}
	}
	return zero, false
}

// Has reports whether k is present.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Set returns a map reflecting the insertion or update of k -> v. If k is
// already mapped to a value identical to v, m is returned unchanged.
func Set[K comparable, V any](m Map[K, V], o *owner.Token, k K, v V) Map[K, V] {
	h := hash.Of(k)
	newRoot, delta := setRec(m.root, 0, h, k, v, o)
	if newRoot == m.root && delta == 0 {
		return m
	}
	return Map[K, V]{size: m.size + delta, root: newRoot}
}

func setRec[K comparable, V any](n *node[K, V], shift uint, h uint32, k K, v V, o *owner.Token) (*node[K, V], int) {
	if invariant.Enabled() {
		invariant.Check(shift%bits.BitsPerLevel == 0, "setRec shift %d not a multiple of %d", shift, bits.BitsPerLevel)
	}
	if n == nil {
		return newLeaf(h, k, v, o), 1
	}
	switch n.kind {
	case kindLeaf:
		if n.leaf.key == k {
			if identicalValue(n.leaf.val, v) {
				return n, 0
			}
			return newLeaf(h, k, v, o), 0
		}
		if n.leaf.hash == h {
			return newCollision(h, []entry[K, V]{n.leaf, {key: k, val: v, hash: h}}, o), 1
		}
		return splitLeaf(n.leaf.hash, n, h, k, v, shift, o), 1
	case kindCollision:
		if n.hash != h {
			return splitLeaf(n.hash, n, h, k, v, shift, o), 1
		}
		for i, e := range n.bucket {
			if e.key == k {
				if identicalValue(e.val, v) {
					return n, 0
				}
				bucket := append([]entry[K, V]{}, n.bucket...)
				bucket[i] = entry[K, V]{key: k, val: v, hash: h}
				return newCollision(h, bucket, o), 0
			}
		}
		bucket := append(append([]entry[K, V]{}, n.bucket...), entry[K, V]{key: k, val: v, hash: h})
		return newCollision(h, bucket, o), 1
	default: // kindBranch
		idx := childIndex(h, shift)
		bit := uint32(1) << idx
		pos := popBelow(n.bitmap, idx)
		if n.bitmap&bit == 0 {
			m := cloneBranchOrOwn(n, o)
			m.children = insertAt(m.children, pos, newLeaf(h, k, v, o))
			m.bitmap |= bit
			checkBranchShape(m)
			return m, 1
		}
		child := n.children[pos]
		newChild, delta := setRec(child, shift+bits.BitsPerLevel, h, k, v, o)
		if newChild == child {
			return n, 0
		}
		m := cloneBranchOrOwn(n, o)
		m.children[pos] = newChild
		return m, delta
	}
}

// splitLeaf builds the spine of branches needed to separate a node
// carrying hash1 (a leaf or collision) from a new entry carrying hash2,
// recursing one level at a time until the hashes diverge. If they never
// diverge (the full 32-bit hash is exhausted and still equal) the two are
// merged into a collision node instead.
func splitLeaf[K comparable, V any](hash1 uint32, existing *node[K, V], hash2 uint32, k K, v V, shift uint, o *owner.Token) *node[K, V] {
	if shift >= 32 {
		var bucket []entry[K, V]
		if existing.kind == kindCollision {
			bucket = append(bucket, existing.bucket...)
		} else {
			bucket = append(bucket, existing.leaf)
		}
		bucket = append(bucket, entry[K, V]{key: k, val: v, hash: hash2})
		return newCollision(hash2, bucket, o)
	}
	idx1 := childIndex(hash1, shift)
	idx2 := childIndex(hash2, shift)
	if idx1 == idx2 {
		child := splitLeaf(hash1, existing, hash2, k, v, shift+bits.BitsPerLevel, o)
		return &node[K, V]{owner: o, kind: kindBranch, bitmap: uint32(1) << idx1, children: []*node[K, V]{child}}
	}
	newLeafNode := newLeaf(hash2, k, v, o)
	var children []*node[K, V]
	if idx1 < idx2 {
		children = []*node[K, V]{existing, newLeafNode}
	} else {
		children = []*node[K, V]{newLeafNode, existing}
	}
	return &node[K, V]{owner: o, kind: kindBranch, bitmap: (uint32(1) << idx1) | (uint32(1) << idx2), children: children}
}

// Delete returns a map without k. If k is absent, m is returned unchanged.
func Delete[K comparable, V any](m Map[K, V], o *owner.Token, k K) Map[K, V] {
	h := hash.Of(k)
	newRoot, delta := deleteRec(m.root, 0, h, k, o)
	if delta == 0 {
		return m
	}
	return Map[K, V]{size: m.size - 1, root: newRoot}
}

func deleteRec[K comparable, V any](n *node[K, V], shift uint, h uint32, k K, o *owner.Token) (*node[K, V], int) {
	if invariant.Enabled() {
		invariant.Check(shift%bits.BitsPerLevel == 0, "deleteRec shift %d not a multiple of %d", shift, bits.BitsPerLevel)
	}
	if n == nil {
		return nil, 0
	}
	switch n.kind {
	case kindLeaf:
		if n.leaf.key == k {
			return nil, 1
		}
		return n, 0
	case kindCollision:
		if n.hash != h {
			return n, 0
		}
		for i, e := range n.bucket {
			if e.key != k {
				continue
			}
			rest := append(append([]entry[K, V]{}, n.bucket[:i]...), n.bucket[i+1:]...)
			if len(rest) == 1 {
				return newLeaf(rest[0].hash, rest[0].key, rest[0].val, o), 1
			}
			return newCollision(h, rest, o), 1
		}
		return n, 0
	default: // kindBranch
		idx := childIndex(h, shift)
		bit := uint32(1) << idx
		if n.bitmap&bit == 0 {
			return n, 0
		}
		pos := popBelow(n.bitmap, idx)
		child := n.children[pos]
		newChild, delta := deleteRec(child, shift+bits.BitsPerLevel, h, k, o)
		if delta == 0 {
			return n, 0
		}
		if newChild == nil {
			if len(n.children) == 1 {
				return nil, 1
			}
			m := cloneBranchOrOwn(n, o)
			m.children = removeAt(m.children, pos)
			m.bitmap &^= bit
			checkBranchShape(m)
			if len(m.children) == 1 && m.children[0].kind != kindBranch {
				return m.children[0], 1
			}
			return m, 1
		}
		m := cloneBranchOrOwn(n, o)
		m.children[pos] = newChild
		if len(m.children) == 1 && m.children[0].kind != kindBranch {
			return m.children[0], 1
		}
		return m, 1
	}
}

// identicalValue reports a == b without panicking when the dynamic type
// behind either any is uncomparable (e.g. a slice): in that case the
// values are treated as never identical, so Set always replaces.
func identicalValue[V any](a, b V) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(a) == any(b)
}

// ForEach calls fn with every entry, in unspecified order.
func (m Map[K, V]) ForEach(fn func(K, V)) {
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		switch n.kind {
		case kindLeaf:
			fn(n.leaf.key, n.leaf.val)
		case kindCollision:
			for _, e := range n.bucket {
				fn(e.key, e.val)
			}
		default:
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	walk(m.root)
}

// Keys returns a range-over-func iterator over m's keys.
func (m Map[K, V]) Keys() func(func(K) bool) {
	return func(yield func(K) bool) {
		ok := true
		m.ForEach(func(k K, _ V) {
			if ok {
				ok = yield(k)
			}
		})
	}
}

// Values returns a range-over-func iterator over m's values, in the same
// unspecified order as Keys and ForEach.
func (m Map[K, V]) Values() func(func(V) bool) {
	return func(yield func(V) bool) {
		ok := true
		m.ForEach(func(_ K, v V) {
			if ok {
				ok = yield(v)
			}
		})
	}
}
