package ahograph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/david-schaller/bmg-edit/triples"
)

// Options configures the plain auxiliary-graph construction.
//   - Weighted: accumulate edge weights instead of using unit weights.
//   - TripleWeights: per-triple weights; triples absent from the map count
//     as 1. Only consulted when Weighted is set.
type Options struct {
	Weighted      bool
	TripleWeights triples.Weights
}

// Option mutates Options before graph construction.
type Option func(*Options)

// WithWeighted enables edge weighting by triple count (or by the weights
// supplied via WithTripleWeights).
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithTripleWeights supplies per-triple weights for the weighted mode.
func WithTripleWeights(w triples.Weights) Option {
	return func(o *Options) {
		o.Weighted = true
		o.TripleWeights = w
	}
}

// Aho constructs the auxiliary graph for the BUILD recursion: one vertex
// per leaf in leaves, and for every triple ab|c in r the undirected edge
// {a, b}. Leaf c is never touched, so leaves without incident triples stay
// isolated and form singleton components.
//
// In unweighted mode every edge has weight 1. In weighted mode the edge
// weight is the number of triples inducing it, or the sum of their
// supplied weights.
//
// Complexity: O(|leaves| + |r|) graph operations.
func Aho(leaves []triples.Leaf, r []triples.Triple, opts ...Option) *simple.WeightedUndirectedGraph {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, l := range leaves {
		if g.Node(l.ID()) == nil {
			g.AddNode(l)
		}
	}

	for _, t := range r {
		w := 0.0
		if prev := g.WeightedEdge(t.A.ID(), t.B.ID()); prev != nil {
			w = prev.Weight()
		}

		switch {
		case !o.Weighted:
			w = 1
		case o.TripleWeights != nil:
			tw, ok := o.TripleWeights[t]
			if !ok {
				tw = 1
			}
			w += tw
		default:
			w++
		}

		g.SetWeightedEdge(simple.WeightedEdge{F: t.A, T: t.B, W: w})
	}

	return g
}

// Components returns the connected components of g as sorted leaf blocks,
// ordered by smallest member. This is the candidate split consumed by the
// recursive tree builder.
func Components(g *simple.WeightedUndirectedGraph) [][]triples.Leaf {
	comps := topo.ConnectedComponents(g)

	blocks := make([][]triples.Leaf, 0, len(comps))
	for _, comp := range comps {
		block := make([]triples.Leaf, 0, len(comp))
		for _, n := range comp {
			block = append(block, leafOf(n))
		}
		blocks = append(blocks, triples.SortLeaves(block))
	}

	// Order blocks by smallest member so the candidate split is stable.
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })

	return blocks
}

// leafOf converts a graph node back into the leaf it represents.
func leafOf(n graph.Node) triples.Leaf {
	if l, ok := n.(triples.Leaf); ok {
		return l
	}
	return triples.Leaf(n.ID())
}
