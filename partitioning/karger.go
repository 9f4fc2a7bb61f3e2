package partitioning

import (
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/partition"
	"github.com/david-schaller/bmg-edit/triples"
)

// RandomizedContraction proposes bipartitions of g by Karger's algorithm:
// random edges are contracted (sampling proportional to weight) until two
// super-vertices remain, and the leaf sets contracted into them form a
// candidate cut. The candidate itself is scored by the caller's objective,
// not by its cut weight; the cut only proposes partitions.
//
// opts.Runs independent runs execute in parallel, each with its own
// pseudo-random source derived from opts.Rand, and the best-scoring
// candidate wins. Ties go to the earliest run so that a fixed seed pins
// the outcome.
//
// Error conditions:
//   - ErrNilObjective: obj is nil.
//   - ErrTooFewLeaves: g has fewer than two vertices.
//
// Complexity: O(Runs * V * E) worst case; runs are embarrassingly
// parallel and merging them is the only synchronization point.
func RandomizedContraction(g *simple.WeightedUndirectedGraph, obj ObjectiveFunc, opts Options) (float64, [][]triples.Leaf, error) {
	if obj == nil {
		return 0, nil, ErrNilObjective
	}
	opts.normalize()

	vertices, edges := edgeList(g)
	if len(vertices) < 2 {
		return 0, nil, ErrTooFewLeaves
	}

	// Derive one deterministic seed per run up front; rand.Rand is not
	// safe for concurrent use.
	seeds := make([]int64, opts.Runs)
	for i := range seeds {
		seeds[i] = opts.Rand.Int63()
	}

	scores := make([]float64, opts.Runs)
	candidates := make([][][]triples.Leaf, opts.Runs)

	var eg errgroup.Group
	for i := 0; i < opts.Runs; i++ {
		i := i
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[i]))
			parts := contractToTwo(vertices, edges, rng)
			scores[i] = obj(parts)
			candidates[i] = parts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}

	best := 0
	for i := 1; i < opts.Runs; i++ {
		if opts.better(scores[i], scores[best]) {
			best = i
		}
	}

	return scores[best], candidates[best], nil
}

// weightedEdge is one auxiliary-graph edge flattened for sampling.
type weightedEdge struct {
	u, v   triples.Leaf
	weight float64
}

// edgeList extracts the sorted vertices and the edge list of g.
func edgeList(g *simple.WeightedUndirectedGraph) ([]triples.Leaf, []weightedEdge) {
	var vertices []triples.Leaf
	nodes := g.Nodes()
	for nodes.Next() {
		vertices = append(vertices, triples.Leaf(nodes.Node().ID()))
	}
	triples.SortLeaves(vertices)

	var edges []weightedEdge
	it := g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		u, v := triples.Leaf(e.From().ID()), triples.Leaf(e.To().ID())
		if v < u {
			u, v = v, u
		}
		edges = append(edges, weightedEdge{u: u, v: v, weight: e.Weight()})
	}
	// Stable edge order so that sampling depends only on the seed.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	return vertices, edges
}

// contractToTwo runs a single contraction pass: while more than two
// super-vertices remain, sample an edge proportional to its weight and
// merge its endpoints. Saturated edges (both endpoints already merged)
// are dropped lazily.
func contractToTwo(vertices []triples.Leaf, edges []weightedEdge, rng *rand.Rand) [][]triples.Leaf {
	p := partition.NewSingletons(vertices)
	remaining := append([]weightedEdge(nil), edges...)

	for p.Len() > 2 && len(remaining) > 0 {
		total := 0.0
		for _, e := range remaining {
			total += e.weight
		}

		// Weighted sampling by cumulative weight.
		r := rng.Float64() * total
		idx := len(remaining) - 1
		for i, e := range remaining {
			r -= e.weight
			if r <= 0 {
				idx = i
				break
			}
		}

		e := remaining[idx]
		if p.Same(e.u, e.v) {
			// Already contracted; drop the edge and resample.
			remaining[idx] = remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
			continue
		}
		p.Merge(e.u, e.v)
	}

	return p.Blocks()
}
