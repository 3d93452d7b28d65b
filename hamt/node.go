package hamt

import (
	"github.com/SylphxAI/Pura/bits"
	"github.com/SylphxAI/Pura/internal/invariant"
	"github.com/SylphxAI/Pura/owner"
)

type kind int8

const (
	kindBranch kind = iota
	kindLeaf
	kindCollision
)

// entry is one key/value pair, tagged with the key's full 32-bit hash so
// collision buckets and branch splits can compare hashes without
// recomputing them.
type entry[K comparable, V any] struct {
	key  K
	val  V
	hash uint32
}

// node is shared by every Map[K,V]: a leaf (one entry), a collision
// bucket (several entries sharing a full 32-bit hash), or a
// bitmap-compressed branch.
type node[K comparable, V any] struct {
	owner *owner.Token
	kind  kind

	leaf entry[K, V] // kindLeaf

	hash   uint32          // kindCollision
	bucket []entry[K, V]   // kindCollision

	bitmap   uint32        // kindBranch
	children []*node[K, V] // kindBranch
}

func newLeaf[K comparable, V any](h uint32, k K, v V, o *owner.Token) *node[K, V] {
	return &node[K, V]{owner: o, kind: kindLeaf, leaf: entry[K, V]{key: k, val: v, hash: h}}
}

func newCollision[K comparable, V any](h uint32, bucket []entry[K, V], o *owner.Token) *node[K, V] {
	return &node[K, V]{owner: o, kind: kindCollision, hash: h, bucket: bucket}
}

// cloneBranchOrOwn mirrors vec's transient rule: a branch stamped with o
// may be patched in place; everything else is shallow-cloned first. Leaves
// and collisions are never patched in place (spec: "they are always
// replaced rather than edited because they are small and the churn is
// rare"), so only branches get this helper.
func cloneBranchOrOwn[K comparable, V any](n *node[K, V], o *owner.Token) *node[K, V] {
	if n.owner == o {
		return n
	}
	c := &node[K, V]{
		owner:    o,
		kind:     kindBranch,
		bitmap:   n.bitmap,
		children: append([]*node[K, V]{}, n.children...),
	}
	checkBranchShape(c)
	return c
}

// checkBranchShape verifies the bitmap-compressed branch invariant every
// setRec/deleteRec caller of cloneBranchOrOwn depends on: the bitmap's
// popcount must equal the number of packed children, since popBelow uses
// the bitmap to compute a child's position in that packed array.
func checkBranchShape[K comparable, V any](n *node[K, V]) {
	if !invariant.Enabled() {
		return
	}
	got := bits.PopCount32(n.bitmap)
	invariant.Check(got == len(n.children), "hamt branch bitmap popcount %d != children length %d", got, len(n.children))
}

func insertAt[T any](xs []*T, pos int, v *T) []*T {
	xs = append(xs, nil)
	copy(xs[pos+1:], xs[pos:])
	xs[pos] = v
	return xs
}

func removeAt[T any](xs []*T, pos int) []*T {
	copy(xs[pos:], xs[pos+1:])
	return xs[:len(xs)-1]
}

func childIndex(h uint32, shift uint) uint32 { return bits.ChildIndex(h, shift) }
func popBelow(bitmap uint32, idx uint32) int { return bits.PopCountBelow(bitmap, idx) }
