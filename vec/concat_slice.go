package vec

import "github.com/SylphxAI/Pura/owner"

// Concat returns a Vec holding a.Len()+b.Len() elements: a's followed by
// b's. Small results fold into a single tail; larger ones flatten each
// side's tail into its trie and join the two tries under a fresh root,
// which is relaxed (carries sizes) unless the left side happens to be
// exactly full at the chosen shift.
func Concat[T any](a, b Vec[T], o *owner.Token) Vec[T] {
	if a.count == 0 {
		return b
	}
	if b.count == 0 {
		return a
	}
	if a.count+b.count <= branchFactor {
		xs := ToSlice(a)
		xs = append(xs, ToSlice(b)...)
		return FromSlice(xs)
	}
	af := flattenToTrie(a, o)
	bf := flattenToTrie(b, o)

	shift := af.shift
	if bf.shift > shift {
		shift = bf.shift
	}
	left := wrapToShift(af.root, af.shift, shift, o)
	right := wrapToShift(bf.root, bf.shift, shift, o)

	root := &node[T]{owner: o, children: []*node[T]{left, right}}
	if af.treeCount != capacityAtShift(shift) {
		root.sizes = []int{af.treeCount, af.treeCount + bf.treeCount}
	}
	return Vec[T]{
		count:     a.count + b.count,
		treeCount: af.treeCount + bf.treeCount,
		shift:     shift + bitsPerLevel,
		root:      root,
		tail:      nil,
		tailOwner: o,
	}
}

func wrapToShift[T any](n *node[T], curShift, target uint, o *owner.Token) *node[T] {
	for curShift < target {
		n = &node[T]{owner: o, children: []*node[T]{n}}
		curShift += bitsPerLevel
	}
	return n
}

func capacityAtShift(shift uint) int {
	return 1 << (shift + bitsPerLevel)
}

// Slice returns the elements in [lo, hi), clamped into [0, Len()]. It is
// implemented as a right trim (keep first hi elements, an O(log n)
// structure-sharing spine drop that always lands on a leaf boundary)
// composed with a left trim (drop the first lo elements). The left trim
// rebuilds its result by pushing, trading the relaxed-zip algorithm the
// spec describes for a simpler O(k) reconstruction; see DESIGN.md.
func Slice[T any](v Vec[T], o *owner.Token, lo, hi int) Vec[T] {
	if lo < 0 {
		lo = 0
	}
	if lo > v.count {
		lo = v.count
	}
	if hi > v.count {
		hi = v.count
	}
	if hi < lo {
		hi = lo
	}
	if lo == 0 && hi == v.count {
		return v
	}
	if hi-lo <= branchFactor {
		xs := ToSlice(v)
		return FromSlice(xs[lo:hi])
	}
	trimmed := rightTrim(v, o, hi)
	return leftTrim(trimmed, o, lo)
}

// rightTrim keeps the first newLen elements. Because a Vec's tail is
// always non-empty for a non-empty Vec (len in [1,32]), the boundary
// between kept trie leaves and the new tail always falls on a multiple of
// 32, so this never needs to split a leaf: every surviving node is either
// kept whole or dropped whole.
func rightTrim[T any](v Vec[T], o *owner.Token, newLen int) Vec[T] {
	if newLen >= v.count {
		return v
	}
	if newLen == 0 {
		return Empty[T]()
	}
	if newLen > v.treeCount {
		tailLen := newLen - v.treeCount
		tail := v.tail
		if v.tailOwner != o {
			tail = append([]T{}, v.tail...)
		}
		v.tail = tail[:tailLen]
		v.count = newLen
		v.tailOwner = o
		return v
	}
	tailLen := ((newLen - 1) % branchFactor) + 1
	newTreeCount := newLen - tailLen
	leaf := leafAt(v.root, v.shift, newTreeCount)
	newTail := append([]T{}, leaf.leaf[:tailLen]...)
	newRoot, newShift := trimTrieToLeafCount(v.root, v.shift, newTreeCount, v.treeCount, o)
	return Vec[T]{count: newLen, treeCount: newTreeCount, shift: newShift, root: newRoot, tail: newTail, tailOwner: o}
}

// leafAt returns the leaf node containing index i.
func leafAt[T any](n *node[T], shift uint, i int) *node[T] {
	for shift > 0 {
		slot, local := childSlot(n, shift, i)
		n = n.children[slot]
		i = local
		shift -= bitsPerLevel
	}
	return n
}

func trimTrieToLeafCount[T any](n *node[T], shift uint, keep, current int, o *owner.Token) (*node[T], uint) {
	if keep == current {
		return n, shift
	}
	if keep == 0 {
		return emptyLeaf[T](), 0
	}
	m := cloneOrOwn(n, o)
	if m.sizes != nil {
		slot := 0
		for m.sizes[slot] <= keep-1 {
			slot++
		}
		prev := 0
		if slot > 0 {
			prev = m.sizes[slot-1]
		}
		childCurrent := m.sizes[slot] - prev
		childKeep := keep - prev
		if childKeep == childCurrent {
			m.children = m.children[:slot+1]
			m.sizes = m.sizes[:slot+1]
		} else {
			trimmedChild, _ := trimTrieToLeafCount(m.children[slot], shift-bitsPerLevel, childKeep, childCurrent, o)
			m.children = append(m.children[:slot], trimmedChild)
			m.sizes = append(m.sizes[:slot], keep)
		}
	} else {
		childCap := 1 << shift
		full := keep / childCap
		remainder := keep % childCap
		if remainder == 0 {
			m.children = m.children[:full]
		} else {
			trimmedChild, _ := trimTrieToLeafCount(m.children[full], shift-bitsPerLevel, remainder, childCap, o)
			m.children = append(m.children[:full], trimmedChild)
		}
	}
	newShift := shift
	for newShift > bitsPerLevel && len(m.children) == 1 {
		m = m.children[0]
		newShift -= bitsPerLevel
	}
	return m, newShift
}

// leftTrim drops the first n elements and reindexes the rest from 0.
func leftTrim[T any](v Vec[T], o *owner.Token, n int) Vec[T] {
	if n <= 0 {
		return v
	}
	if n >= v.count {
		return Empty[T]()
	}
	xs := ToSlice(v)
	return FromSlice(xs[n:])
}
