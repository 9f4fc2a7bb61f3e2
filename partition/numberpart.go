package partition

import (
	"container/heap"

	"github.com/david-schaller/bmg-edit/triples"
)

// kkNode is one entry of the largest-differencing pairing tree. Combining
// the two heaviest entries links the lighter one below the heavier one and
// replaces both by their weight difference; the final bipartition is read
// off by 2-coloring the resulting tree.
type kkNode struct {
	priority float64 // remaining weight difference of this subtree
	index    int     // index of the original item
	order    int     // insertion order, tie-break for determinism
	children []*kkNode
}

// kkHeap is a max-heap over kkNodes by priority, with ties resolved by
// insertion order so results are reproducible.
type kkHeap []*kkNode

func (h kkHeap) Len() int { return len(h) }
func (h kkHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].order < h[j].order
}
func (h kkHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *kkHeap) Push(x interface{}) { *h = append(*h, x.(*kkNode)) }
func (h *kkHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// KarmarkarKarp partitions the given weights into two groups with nearly
// equal sums using the largest-differencing (Karmarkar-Karp) heuristic.
// It returns the item indices of the two groups.
//
// Steps:
//  1. Push every item onto a max-heap keyed by its weight.
//  2. While more than one entry remains, pop the two heaviest entries x
//     and y, attach y as a child of x in the pairing tree (meaning "x and
//     y end up on opposite sides"), and push x back with priority x-y.
//  3. 2-color the pairing tree from the single remaining root; the two
//     color classes are the two groups.
//
// The final difference of the group sums equals the priority left at the
// root. Complexity: O(n log n) time, O(n) memory.
func KarmarkarKarp(weights []float64) [2][]int {
	h := make(kkHeap, 0, len(weights))
	for i, w := range weights {
		h = append(h, &kkNode{priority: w, index: i, order: i})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		x := heap.Pop(&h).(*kkNode)
		y := heap.Pop(&h).(*kkNode)
		x.children = append(x.children, y)
		x.priority -= y.priority
		heap.Push(&h, x)
	}

	var groups [2][]int
	if h.Len() == 0 {
		return groups
	}

	// Read off the bipartition by alternating colors along the tree.
	type colored struct {
		node  *kkNode
		color int
	}
	stack := []colored{{h[0], 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		groups[top.color] = append(groups[top.color], top.node.index)
		for _, child := range top.node.children {
			stack = append(stack, colored{child, (top.color + 1) % 2})
		}
	}

	return groups
}

// BalancedGrouping coarse-grains a multi-way partition into two groups of
// blocks whose total leaf counts are as balanced as largest-differencing
// can make them. It is the weight-based binarization primitive: each block
// weighs as much as its leaf count.
func BalancedGrouping(blocks [][]triples.Leaf) [2][][]triples.Leaf {
	weights := make([]float64, len(blocks))
	for i, b := range blocks {
		weights[i] = float64(len(b))
	}

	idx := KarmarkarKarp(weights)

	var out [2][][]triples.Leaf
	for side := 0; side < 2; side++ {
		for _, i := range idx[side] {
			out[side] = append(out[side], blocks[i])
		}
	}

	return out
}
