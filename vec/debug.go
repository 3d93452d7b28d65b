package vec

import (
	"strconv"

	"github.com/xlab/treeprint"
)

// NodeKind classifies a trie node for Stats, generalizing the teacher's
// node-shape census (trie.go's Stats/GetStats/PrintStats) to Vec's leaf,
// regular-branch, and relaxed-branch node kinds.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindBranch
	KindRelaxedBranch
)

// Stats counts each node kind reachable from v's root.
type Stats map[NodeKind]int

// CollectStats walks v's trie and tallies node kinds.
func CollectStats[T any](v Vec[T]) Stats {
	s := Stats{}
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		switch {
		case n.isLeaf():
			s[KindLeaf]++
		case n.sizes != nil:
			s[KindRelaxedBranch]++
		default:
			s[KindBranch]++
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(v.root)
	return s
}

// Dump renders v's trie structure as a tree, for diagnostics.
func Dump[T any](v Vec[T]) string {
	tree := treeprint.New()
	tree.SetValue("vec")
	var walk func(tp treeprint.Tree, n *node[T])
	walk = func(tp treeprint.Tree, n *node[T]) {
		if n.isLeaf() {
			tp.AddNode(leafLabel(n.leaf))
			return
		}
		label := "branch"
		if n.sizes != nil {
			label = "relaxed-branch"
		}
		branch := tp.AddBranch(label)
		for _, c := range n.children {
			walk(branch, c)
		}
	}
	walk(tree, v.root)
	if len(v.tail) > 0 {
		tree.AddNode(leafLabel(v.tail))
	}
	return tree.String()
}

func leafLabel[T any](xs []T) string {
	return "leaf[" + strconv.Itoa(len(xs)) + "]"
}
