package vec

import (
	"github.com/SylphxAI/Pura/bits"
	"github.com/SylphxAI/Pura/internal/invariant"
	"github.com/SylphxAI/Pura/owner"
)

const (
	bitsPerLevel = bits.BitsPerLevel
	branchFactor = bits.BranchFactor
	mask         = uint32(bits.Mask)
)

// node is a trie node shared by every Vec[T]. It is either a leaf (children
// is nil, leaf holds up to 32 elements) or a branch (children holds up to
// 32 sub-nodes). A branch is "relaxed" when sizes is non-nil: sizes[i] is
// the cumulative element count covered by children[0..i]. Regular branches
// leave sizes nil and compute child position and subtree size purely from
// shift arithmetic.
type node[T any] struct {
	owner    *owner.Token
	leaf     []T
	children []*node[T]
	sizes    []int
}

func (n *node[T]) isLeaf() bool { return n.children == nil }

func newLeaf[T any](vals []T, o *owner.Token) *node[T] {
	return &node[T]{owner: o, leaf: vals}
}

func emptyLeaf[T any]() *node[T] {
	return &node[T]{leaf: []T{}}
}

// newPath builds a single-child spine from shift down to a leaf holding
// vals, used when pushing a tail into a part of the trie that doesn't
// exist yet.
func newPath[T any](shift uint, vals []T, o *owner.Token) *node[T] {
	if shift == 0 {
		return newLeaf(vals, o)
	}
	return &node[T]{owner: o, children: []*node[T]{newPath(shift-bitsPerLevel, vals, o)}}
}

// cloneOrOwn returns n itself if it already carries o, otherwise a shallow
// clone stamped with o. The clone copies (not aliases) every backing
// array/slice so further in-place writes under o never corrupt n.
func cloneOrOwn[T any](n *node[T], o *owner.Token) *node[T] {
	if n.owner == o {
		return n
	}
	c := &node[T]{owner: o}
	if n.leaf != nil {
		c.leaf = append([]T{}, n.leaf...)
	}
	if n.children != nil {
		c.children = append([]*node[T]{}, n.children...)
	}
	if n.sizes != nil {
		c.sizes = append([]int{}, n.sizes...)
	}
	if invariant.Enabled() {
		checkNodeShape(c)
	}
	return c
}

// checkNodeShape verifies the node-shape invariants cloneOrOwn's callers
// (assocTree, pushTailIntoTrie, popTailRec) depend on: a leaf never holds
// more than a full branch factor of elements, a branch never holds more
// than a full branch factor of children, and a relaxed branch's
// cumulative sizes array tracks its children one-for-one and strictly
// increases (each child covers at least one more element than the last).
func checkNodeShape[T any](n *node[T]) {
	if n.leaf != nil {
		invariant.Check(len(n.leaf) <= branchFactor, "leaf holds %d elements, want <= %d", len(n.leaf), branchFactor)
	}
	if n.children != nil {
		invariant.Check(len(n.children) <= branchFactor, "branch holds %d children, want <= %d", len(n.children), branchFactor)
	}
	if n.sizes == nil {
		return
	}
	invariant.Check(len(n.sizes) == len(n.children), "relaxed branch sizes length %d != children length %d", len(n.sizes), len(n.children))
	prev := 0
	for i, s := range n.sizes {
		invariant.Check(s > prev, "relaxed branch sizes not strictly increasing at index %d: %d <= %d", i, s, prev)
		prev = s
	}
}

// childSlot returns the child index to descend into at this branch for
// local index i, plus i's offset within that child's subtree. Regular
// branches compute both from shift arithmetic; relaxed branches probe the
// cumulative sizes array, per spec.
func childSlot[T any](n *node[T], shift uint, i int) (slot int, local int) {
	if n.sizes != nil {
		slot = 0
		for n.sizes[slot] <= i {
			slot++
		}
		if slot == 0 {
			return 0, i
		}
		return slot, i - n.sizes[slot-1]
	}
	slot = int(uint32(i) >> shift & mask)
	local = i & ((1 << shift) - 1)
	return slot, local
}
