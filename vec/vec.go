// Package vec implements the persistent indexed vector: a radix-balanced
// trie with a mutable tail buffer, supporting indexed get/assoc, push/pop
// at the tail, concatenation, and slicing under the transient owner-token
// editing protocol.
package vec

import (
	"github.com/SylphxAI/Pura/internal/invariant"
	"github.com/SylphxAI/Pura/owner"
)

// Vec is an immutable, indexed sequence of T. The zero value is not a
// valid Vec; use Empty.
type Vec[T any] struct {
	count     int
	treeCount int
	shift     uint
	root      *node[T]
	tail      []T
	tailOwner *owner.Token
}

// Empty returns the empty vector.
func Empty[T any]() Vec[T] {
	return Vec[T]{root: emptyLeaf[T]()}
}

// FromSlice builds a Vec holding a copy of xs, in order.
func FromSlice[T any](xs []T) Vec[T] {
	v := Empty[T]()
	o := owner.New()
	for _, x := range xs {
		v = v.Push(o, x)
	}
	return v
}

// ToSlice returns a fresh slice with v's elements in order.
func ToSlice[T any](v Vec[T]) []T {
	out := make([]T, 0, v.count)
	v.ForEach(func(x T) { out = append(out, x) })
	return out
}

// Len returns the number of elements.
func (v Vec[T]) Len() int { return v.count }

// Get returns the element at i and true, or the zero value and false when
// i is out of range.
func (v Vec[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.count {
		return zero, false
	}
	if i >= v.treeCount {
		return v.tail[i-v.treeCount], true
	}
	return getTree(v.root, v.shift, i), true
}

func getTree[T any](n *node[T], shift uint, i int) T {
	for shift > 0 {
		slot, local := childSlot(n, shift, i)
		n = n.children[slot]
		i = local
		shift -= bitsPerLevel
	}
	return n.leaf[i]
}

// Assoc returns a Vec equal to v except position i holds val. i must be in
// [0, Len()). Nodes stamped with o are updated in place; every other node
// on the path from root to i is cloned.
func (v Vec[T]) Assoc(o *owner.Token, i int, val T) (Vec[T], error) {
	if i < 0 || i >= v.count {
		return v, &IndexError{Index: i, Len: v.count}
	}
	if i >= v.treeCount {
		tail := v.tail
		if v.tailOwner != o {
			tail = append([]T{}, v.tail...)
		}
		tail[i-v.treeCount] = val
		v.tail, v.tailOwner = tail, o
		if invariant.Enabled() {
			invariant.Check(len(v.tail) <= branchFactor, "tail length %d exceeds branch factor %d", len(v.tail), branchFactor)
		}
		return v, nil
	}
	v.root = assocTree(v.root, v.shift, i, val, o)
	return v, nil
}

func assocTree[T any](n *node[T], shift uint, i int, val T, o *owner.Token) *node[T] {
	if invariant.Enabled() {
		invariant.Check(shift%bitsPerLevel == 0, "assocTree shift %d not a multiple of %d", shift, bitsPerLevel)
	}
	m := cloneOrOwn(n, o)
	if shift == 0 {
		m.leaf[i] = val
		return m
	}
	slot, local := childSlot(m, shift, i)
	m.children[slot] = assocTree(m.children[slot], shift-bitsPerLevel, local, val, o)
	return m
}

// Push appends val to the end of v.
func (v Vec[T]) Push(o *owner.Token, val T) Vec[T] {
	if len(v.tail) < branchFactor {
		tail := v.tail
		if v.tailOwner != o {
			tail = append([]T{}, v.tail...)
		}
		tail = append(tail, val)
		v.count++
		v.tail, v.tailOwner = tail, o
		if invariant.Enabled() {
			invariant.Check(len(v.tail) <= branchFactor, "tail length %d exceeds branch factor %d", len(v.tail), branchFactor)
		}
		return v
	}
	newRoot, newShift := incorporateTail(v.root, v.shift, v.count, v.tail, o)
	return Vec[T]{
		count:     v.count + 1,
		treeCount: v.treeCount + branchFactor,
		shift:     newShift,
		root:      newRoot,
		tail:      []T{val},
		tailOwner: o,
	}
}

// incorporateTail folds a full (or, when called from flattenToTrie, a
// partial but globally-last) tail into the trie, growing a new root level
// when the current one is saturated.
func incorporateTail[T any](root *node[T], shift uint, count int, tail []T, o *owner.Token) (*node[T], uint) {
	if shift == 0 {
		if len(root.leaf) == 0 {
			return newLeaf(append([]T{}, tail...), o), 0
		}
		return &node[T]{owner: o, children: []*node[T]{root, newLeaf(append([]T{}, tail...), o)}}, bitsPerLevel
	}
	if (count >> bitsPerLevel) > (1 << shift) {
		return &node[T]{owner: o, children: []*node[T]{root, newPath(shift, append([]T{}, tail...), o)}}, shift + bitsPerLevel
	}
	return pushTailIntoTrie(root, shift, count, tail, o), shift
}

func pushTailIntoTrie[T any](n *node[T], shift uint, count int, tail []T, o *owner.Token) *node[T] {
	if invariant.Enabled() {
		invariant.Check(shift%bitsPerLevel == 0, "pushTailIntoTrie shift %d not a multiple of %d", shift, bitsPerLevel)
		invariant.Check(len(tail) <= branchFactor, "pushTailIntoTrie given tail of length %d, want <= %d", len(tail), branchFactor)
	}
	subidx := int(uint32(count-1) >> shift & mask)
	m := cloneOrOwn(n, o)
	var child *node[T]
	if shift == bitsPerLevel {
		child = newLeaf(append([]T{}, tail...), o)
	} else if subidx < len(m.children) {
		child = pushTailIntoTrie(m.children[subidx], shift-bitsPerLevel, count, tail, o)
	} else {
		child = newPath(shift-bitsPerLevel, append([]T{}, tail...), o)
	}
	if subidx < len(m.children) {
		m.children[subidx] = child
	} else {
		m.children = append(m.children, child)
	}
	return m
}

// flattenToTrie folds whatever is currently in the tail into the trie,
// even if the tail is not full. This is safe because the folded leaf is
// always the globally last leaf, and the "last child may be short of
// capacity" invariant permits that.
func flattenToTrie[T any](v Vec[T], o *owner.Token) Vec[T] {
	if len(v.tail) == 0 {
		return v
	}
	newRoot, newShift := incorporateTail(v.root, v.shift, v.count, v.tail, o)
	return Vec[T]{count: v.count, treeCount: v.count, shift: newShift, root: newRoot, tail: nil, tailOwner: o}
}

// Pop drops the last element. It returns the original vec and (zero,
// false) when v is empty.
func (v Vec[T]) Pop(o *owner.Token) (Vec[T], T, bool) {
	var zero T
	if v.count == 0 {
		return v, zero, false
	}
	if len(v.tail) > 1 {
		tail := v.tail
		if v.tailOwner != o {
			tail = append([]T{}, v.tail...)
		}
		popped := tail[len(tail)-1]
		tail = tail[:len(tail)-1]
		v.count--
		v.tail, v.tailOwner = tail, o
		if invariant.Enabled() {
			invariant.Check(len(v.tail) >= 0 && len(v.tail) < branchFactor, "tail length %d out of range [0, %d)", len(v.tail), branchFactor)
		}
		return v, popped, true
	}
	var popped T
	if len(v.tail) == 1 {
		popped = v.tail[0]
	}
	if v.treeCount == 0 {
		return Empty[T](), popped, true
	}
	newTail, newRoot, newShift := popTailFromTrie(v.root, v.shift, o)
	if len(v.tail) == 0 {
		popped = newTail[len(newTail)-1]
		newTail = newTail[:len(newTail)-1]
	}
	return Vec[T]{
		count:     v.count - 1,
		treeCount: v.treeCount - branchFactor,
		shift:     newShift,
		root:      newRoot,
		tail:      newTail,
		tailOwner: o,
	}, popped, true
}

func popTailFromTrie[T any](root *node[T], shift uint, o *owner.Token) ([]T, *node[T], uint) {
	if shift == 0 {
		return append([]T{}, root.leaf...), emptyLeaf[T](), 0
	}
	newRoot, leafVals := popTailRec(root, shift, o)
	newShift := shift
	for newShift > bitsPerLevel && newRoot != nil && len(newRoot.children) == 1 {
		newRoot = newRoot.children[0]
		newShift -= bitsPerLevel
	}
	if newRoot == nil {
		newRoot, newShift = emptyLeaf[T](), 0
	}
	return leafVals, newRoot, newShift
}

func popTailRec[T any](n *node[T], shift uint, o *owner.Token) (*node[T], []T) {
	lastIdx := len(n.children) - 1
	if shift == bitsPerLevel {
		leafVals := n.children[lastIdx].leaf
		if lastIdx == 0 {
			return nil, leafVals
		}
		m := cloneOrOwn(n, o)
		m.children = m.children[:lastIdx]
		if m.sizes != nil {
			m.sizes = m.sizes[:lastIdx]
		}
		return m, leafVals
	}
	child, leafVals := popTailRec(n.children[lastIdx], shift-bitsPerLevel, o)
	if child == nil && lastIdx == 0 {
		return nil, leafVals
	}
	m := cloneOrOwn(n, o)
	if child == nil {
		m.children = m.children[:lastIdx]
		if m.sizes != nil {
			m.sizes = m.sizes[:lastIdx]
		}
	} else {
		m.children[lastIdx] = child
	}
	return m, leafVals
}

// ForEach calls fn with every element in order.
func (v Vec[T]) ForEach(fn func(T)) {
	walkTree(v.root, v.shift, fn)
	for _, x := range v.tail {
		fn(x)
	}
}

func walkTree[T any](n *node[T], shift uint, fn func(T)) {
	if shift == 0 {
		for _, x := range n.leaf {
			fn(x)
		}
		return
	}
	for _, c := range n.children {
		walkTree(c, shift-bitsPerLevel, fn)
	}
}

// Iter returns a range-over-func iterator over v's elements, in order.
func (v Vec[T]) Iter() func(func(T) bool) {
	return func(yield func(T) bool) {
		ok := true
		stop := func(x T) {
			if ok {
				ok = yield(x)
			}
		}
		v.ForEach(func(x T) {
			if ok {
				stop(x)
			}
		})
	}
}
