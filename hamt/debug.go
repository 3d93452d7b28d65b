package hamt

import (
	"strconv"

	"github.com/SylphxAI/Pura/bits"
	"github.com/xlab/treeprint"
)

// NodeKind classifies a HAMT node for Stats, generalizing the teacher's
// node-shape census to leaf/collision/branch.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindCollision
	KindBranch
)

// Stats counts each node kind reachable from m's root.
type Stats map[NodeKind]int

// CollectStats walks m's trie and tallies node kinds.
func CollectStats[K comparable, V any](m Map[K, V]) Stats {
	s := Stats{}
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		switch n.kind {
		case kindLeaf:
			s[KindLeaf]++
		case kindCollision:
			s[KindCollision]++
		default:
			s[KindBranch]++
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	walk(m.root)
	return s
}

// Dump renders m's trie structure as a tree, for diagnostics.
func Dump[K comparable, V any](m Map[K, V]) string {
	tree := treeprint.New()
	tree.SetValue("hamt")
	var walk func(tp treeprint.Tree, n *node[K, V])
	walk = func(tp treeprint.Tree, n *node[K, V]) {
		if n == nil {
			tp.AddNode("empty")
			return
		}
		switch n.kind {
		case kindLeaf:
			tp.AddNode("leaf")
		case kindCollision:
			tp.AddNode("collision[" + strconv.Itoa(len(n.bucket)) + "]")
		default:
			branch := tp.AddBranch("branch[" + strconv.Itoa(bits.PopCount32(n.bitmap)) + "]")
			for _, c := range n.children {
				walk(branch, c)
			}
		}
	}
	walk(tree, m.root)
	return tree.String()
}
