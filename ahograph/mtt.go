package ahograph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/partition"
	"github.com/david-schaller/bmg-edit/triples"
)

// MTT performs the forcing-mode reduction: it builds the plain Aho graph
// for (leaves, r) and then merges connected components until no forbidden
// triple in f is separated. A forbidden triple xy|z is separated when x
// and y share a block while z lies in another; any tree refining such a
// partition would display the triple, so the blocks of x and z are merged
// to prevent that.
//
// Steps:
//  1. Build the Aho graph and initialize the partition P with its
//     connected components. If P already has a single block, return.
//  2. Collect the live set S of currently separated forbidden triples and
//     index every forbidden triple by the leaves it mentions.
//  3. While S is non-empty: pop a triple t, connect t.A-t.B and t.A-t.C in
//     the graph, and merge the blocks of t.A and t.C. Merge returns the
//     smaller merged block; only forbidden triples touching its leaves can
//     change status, so re-scan exactly those, removing newly satisfied
//     triples from S (connecting them in the graph as well) and adding
//     newly separated ones.
//
// Each leaf is re-scanned only when it moves into a block at least twice
// its previous size, which bounds the total work by O(|f| log |leaves|)
// triple checks. On return, no triple of f is separated by the final
// partition.
func MTT(leaves []triples.Leaf, r, f []triples.Triple) (*partition.Partition, *simple.WeightedUndirectedGraph) {
	g := Aho(leaves, r)
	p := partition.NewFromBlocks(Components(g))

	if p.Len() == 1 {
		return p, g
	}

	// Live set of separated forbidden triples, plus a queue giving the
	// processing order (map iteration alone would be nondeterministic).
	live := make(map[triples.Triple]struct{})
	queue := make([]triples.Triple, 0, len(f))
	for _, t := range f {
		if p.SeparatedXYZ(t.A, t.B, t.C) {
			live[t] = struct{}{}
			queue = append(queue, t)
		}
	}

	// Forbidden triples indexed by every leaf they mention.
	byLeaf := make(map[triples.Leaf][]triples.Triple, len(leaves))
	for _, t := range f {
		byLeaf[t.A] = append(byLeaf[t.A], t)
		byLeaf[t.B] = append(byLeaf[t.B], t)
		byLeaf[t.C] = append(byLeaf[t.C], t)
	}

	for len(queue) > 0 {
		t := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, ok := live[t]; !ok {
			continue // already satisfied by an earlier merge
		}
		delete(live, t)

		tripleConnect(g, t)
		smaller := p.Merge(t.A, t.C)

		// Only triples touching the smaller merged block can have changed.
		for _, u := range smaller {
			for _, tu := range byLeaf[u] {
				_, isLive := live[tu]
				separated := p.SeparatedXYZ(tu.A, tu.B, tu.C)

				switch {
				case isLive && !separated:
					delete(live, tu)
					tripleConnect(g, tu)
				case !isLive && separated:
					live[tu] = struct{}{}
					queue = append(queue, tu)
				}
			}
		}
	}

	return p, g
}

// tripleConnect records the resolution of a forbidden triple in the
// auxiliary graph by linking its first leaf to the other two.
func tripleConnect(g *simple.WeightedUndirectedGraph, t triples.Triple) {
	if g.WeightedEdge(t.A.ID(), t.B.ID()) == nil {
		g.SetWeightedEdge(simple.WeightedEdge{F: t.A, T: t.B, W: 1})
	}
	if g.WeightedEdge(t.A.ID(), t.C.ID()) == nil {
		g.SetWeightedEdge(simple.WeightedEdge{F: t.A, T: t.C, W: 1})
	}
}
