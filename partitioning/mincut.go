package partitioning

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/triples"
)

// MinCut computes an exact global minimum-weight cut of the weighted
// undirected auxiliary graph g using the Stoer-Wagner algorithm and
// returns the cut weight together with the two sides of the bipartition.
//
// MinCut is fully deterministic: vertices are processed in ascending leaf
// order and ties in the maximum-adjacency search are broken toward the
// smaller leaf. On a disconnected graph the minimum cut has weight 0.
//
// Error conditions:
//   - ErrTooFewLeaves: g has fewer than two vertices.
//
// Steps:
//  1. Materialize the vertex list and a symmetric weight map from g.
//  2. Run |V|-1 minimum-cut phases. Each phase grows a set A from the
//     first active vertex by repeatedly absorbing the most tightly
//     connected remaining vertex; the cut-of-the-phase separates the last
//     absorbed vertex t (with every original vertex merged into it) from
//     the rest.
//  3. Record the lightest cut-of-the-phase, then merge t into the vertex
//     absorbed before it and repeat until one vertex remains.
//
// Complexity: O(V^2 log V + V*E) time with the map-based adjacency used
// here, O(V + E) memory.
func MinCut(g *simple.WeightedUndirectedGraph) (float64, [][]triples.Leaf, error) {
	vertices, weights := adjacency(g)
	if len(vertices) < 2 {
		return 0, nil, ErrTooFewLeaves
	}

	// merged[v] lists the original vertices currently contracted into v.
	merged := make(map[triples.Leaf][]triples.Leaf, len(vertices))
	for _, v := range vertices {
		merged[v] = []triples.Leaf{v}
	}

	active := append([]triples.Leaf(nil), vertices...)
	bestWeight := math.Inf(1)
	var bestSide []triples.Leaf

	for len(active) > 1 {
		cutWeight, last, prev := minimumCutPhase(active, weights)

		if cutWeight < bestWeight {
			bestWeight = cutWeight
			bestSide = append([]triples.Leaf(nil), merged[last]...)
		}

		// Contract last into prev.
		merged[prev] = append(merged[prev], merged[last]...)
		delete(merged, last)
		for x, w := range weights[last] {
			if x == prev {
				continue
			}
			weights[prev][x] += w
			weights[x][prev] += w
		}
		for x := range weights[last] {
			delete(weights[x], last)
		}
		delete(weights, last)

		i := indexOf(active, last)
		active = append(active[:i], active[i+1:]...)
	}

	inBest := make(map[triples.Leaf]struct{}, len(bestSide))
	for _, l := range bestSide {
		inBest[l] = struct{}{}
	}
	other := make([]triples.Leaf, 0, len(vertices)-len(bestSide))
	for _, v := range vertices {
		if _, ok := inBest[v]; !ok {
			other = append(other, v)
		}
	}

	parts := [][]triples.Leaf{
		triples.SortLeaves(bestSide),
		triples.SortLeaves(other),
	}

	return bestWeight, parts, nil
}

// minimumCutPhase performs one maximum-adjacency sweep over the active
// vertices. It returns the weight of the cut-of-the-phase together with
// the last and second-to-last absorbed vertices.
func minimumCutPhase(active []triples.Leaf, weights map[triples.Leaf]map[triples.Leaf]float64) (float64, triples.Leaf, triples.Leaf) {
	inA := make(map[triples.Leaf]struct{}, len(active))
	key := make(map[triples.Leaf]float64, len(active))

	last, prev := active[0], active[0]
	inA[last] = struct{}{}
	for x, w := range weights[last] {
		key[x] = w
	}

	for step := 1; step < len(active); step++ {
		// Most tightly connected remaining vertex; smallest leaf on ties.
		var next triples.Leaf
		nextKey := math.Inf(-1)
		found := false
		for _, v := range active {
			if _, ok := inA[v]; ok {
				continue
			}
			if !found || key[v] > nextKey || (key[v] == nextKey && v < next) {
				next, nextKey, found = v, key[v], true
			}
		}

		prev, last = last, next
		inA[next] = struct{}{}
		for x, w := range weights[next] {
			if _, ok := inA[x]; !ok {
				key[x] += w
			}
		}
	}

	return key[last], last, prev
}

// adjacency extracts the sorted vertex list and a symmetric weight map
// from the gonum graph.
func adjacency(g *simple.WeightedUndirectedGraph) ([]triples.Leaf, map[triples.Leaf]map[triples.Leaf]float64) {
	var vertices []triples.Leaf
	nodes := g.Nodes()
	for nodes.Next() {
		vertices = append(vertices, triples.Leaf(nodes.Node().ID()))
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	weights := make(map[triples.Leaf]map[triples.Leaf]float64, len(vertices))
	for _, v := range vertices {
		weights[v] = make(map[triples.Leaf]float64)
	}

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		u := triples.Leaf(e.From().ID())
		v := triples.Leaf(e.To().ID())
		weights[u][v] += e.Weight()
		weights[v][u] += e.Weight()
	}

	return vertices, weights
}

// indexOf returns the position of l in ls, or -1 if absent.
func indexOf(ls []triples.Leaf, l triples.Leaf) int {
	for i, x := range ls {
		if x == l {
			return i
		}
	}
	return -1
}
