// Package bits holds the 5-bit radix constants shared by Vec and HAMT, and
// the small index-decomposition helpers built on them.
package bits

import "math/bits"

const (
	// BitsPerLevel is the radix width: each trie level consumes 5 bits of
	// either a numeric index (Vec) or a key hash (HAMT).
	BitsPerLevel = 5
	// BranchFactor is 32, the number of children a full node holds.
	BranchFactor = 1 << BitsPerLevel
	// Mask selects the low BitsPerLevel bits of a shifted index/hash.
	Mask = BranchFactor - 1
)

// ChildIndex returns the 5-bit slot for index/hash i at trie depth
// expressed as shift (a multiple of BitsPerLevel).
func ChildIndex(i uint32, shift uint) uint32 {
	return (i >> shift) & Mask
}

// PopCount32 returns the number of set bits, used to compute a child's
// position within a bitmap-compressed branch's packed children array.
func PopCount32(x uint32) int {
	return bits.OnesCount32(x)
}

// PopCountBelow returns the number of set bits in bitmap below bit index
// idx, i.e. the packed-array position at which a child for idx belongs.
func PopCountBelow(bitmap uint32, idx uint32) int {
	return PopCount32(bitmap & (uint32(1)<<idx - 1))
}
