// Package tree provides the rooted tree container produced by the
// recursive tree builders: leaf nodes carrying a single leaf identifier
// and inner nodes owning an ordered list of child subtrees.
//
// A tree is always assembled bottom-up from freshly created subtrees, so
// it is acyclic and singly rooted by construction; children are never
// references back up or sideways. Child order carries no meaning except
// for the chain shape imposed by caterpillar binarization.
//
// Besides construction, the package offers the queries the rest of the
// module (and its tests) need: leaf enumeration, extraction of all
// triples a tree displays, and order-insensitive topology comparison.
package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/david-schaller/bmg-edit/triples"
)

// Node is a node of a rooted tree: either a leaf carrying exactly one
// leaf identifier, or an inner node with ordered children.
type Node struct {
	leaf     triples.Leaf
	isLeaf   bool
	children []*Node
}

// NewLeaf creates a leaf node for l.
func NewLeaf(l triples.Leaf) *Node {
	return &Node{leaf: l, isLeaf: true}
}

// NewInner creates an inner node with the given children, in order.
func NewInner(children ...*Node) *Node {
	n := &Node{}
	n.children = append(n.children, children...)
	return n
}

// AddChild appends child to the node's children.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n.isLeaf }

// Leaf returns the leaf identifier of a leaf node. It must only be called
// when IsLeaf is true.
func (n *Node) Leaf() triples.Leaf { return n.leaf }

// Children returns the node's children. The returned slice is owned by
// the node and must not be mutated.
func (n *Node) Children() []*Node { return n.children }

// Leaves returns all leaf identifiers below n in ascending order.
func (n *Node) Leaves() []triples.Leaf {
	var out []triples.Leaf
	n.walk(func(v *Node) {
		if v.isLeaf {
			out = append(out, v.leaf)
		}
	})

	return triples.SortLeaves(out)
}

// walk visits every node below and including n in depth-first order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.walk(visit)
	}
}

// Triples returns every triple ab|c the tree rooted at n displays: for
// every inner node v and distinct children ci, cj of v, all pairs {a, b}
// within ci against every c within cj. Each triple is emitted once, with
// a < b normalized, at the node that is the last common ancestor of a
// and c.
//
// Complexity: output-sensitive; up to O(n^3) triples for n leaves.
func (n *Node) Triples() []triples.Triple {
	var out []triples.Triple

	n.walk(func(v *Node) {
		if len(v.children) < 2 {
			return
		}

		childLeaves := make([][]triples.Leaf, len(v.children))
		for i, c := range v.children {
			childLeaves[i] = c.Leaves()
		}

		for i, in := range childLeaves {
			if len(in) < 2 {
				continue
			}
			for j, outside := range childLeaves {
				if i == j {
					continue
				}
				for ai := 0; ai < len(in); ai++ {
					for bi := ai + 1; bi < len(in); bi++ {
						for _, c := range outside {
							out = append(out, triples.Triple{A: in[ai], B: in[bi], C: c})
						}
					}
				}
			}
		}
	})

	return out
}

// TopologyEqual reports whether two trees have the same partition
// structure at every node, irrespective of child order.
func TopologyEqual(a, b *Node) bool {
	return a.canonical() == b.canonical()
}

// canonical renders the subtree as a canonical string: leaves by their
// identifier, inner nodes by the sorted canonical forms of their
// children.
func (n *Node) canonical() string {
	if n.isLeaf {
		return fmt.Sprintf("%d", n.leaf)
	}

	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.canonical()
	}
	sort.Strings(parts)

	return "(" + strings.Join(parts, ",") + ")"
}

// String renders the tree in Newick-like form, children in stored order.
func (n *Node) String() string {
	if n.isLeaf {
		return fmt.Sprintf("%d", n.leaf)
	}

	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}

	return "(" + strings.Join(parts, ",") + ")"
}
