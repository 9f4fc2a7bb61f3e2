package partitioning

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/triples"
)

// LouvainResult is the outcome of hierarchical clustering.
//   - Blocks: the final partition, mapped back to original leaves.
//   - Score: the objective value of Blocks (modularity, or the custom
//     objective when one was supplied).
//   - LevelScores: the score of the singleton partition followed by the
//     score after each completed level. Accepted moves only ever improve
//     the score, so the sequence is monotone and the last entry is the
//     best seen.
type LouvainResult struct {
	Blocks      [][]triples.Leaf
	Score       float64
	LevelScores []float64
}

// Louvain clusters the auxiliary graph g by the multi-level Louvain
// method. With a nil objective it maximizes graph modularity using the
// closed-form gain of moving a single node between communities. With a
// non-nil objective the marginal gain of every candidate move is obtained
// by re-scoring the full leaf partition, and opts.Minimize decides the
// direction.
//
// Each level starts with every node in its own singleton community and
// sweeps nodes in random order, re-assigning each node to the neighboring
// community with the best gain; ties prefer the node's current community.
// Moves that would reduce the number of communities below
// opts.MinCommunities are skipped and the sweep continues. When a full
// sweep moves nothing, the level ends: every community is contracted into
// a super-node (aggregating edge weights, intra-community weight becomes
// a self-loop) and the next level begins. The algorithm terminates when a
// level produces no move at all.
//
// Edge case: a graph without edges makes every node its own community
// immediately.
//
// Error conditions:
//   - ErrEmptyGraph: g has no vertices.
func Louvain(g *simple.WeightedUndirectedGraph, obj ObjectiveFunc, opts Options) (LouvainResult, error) {
	opts.normalize()

	lg := levelFromGonum(g)
	if lg.n == 0 {
		return LouvainResult{}, ErrEmptyGraph
	}

	res := LouvainResult{
		Blocks: singletonBlocks(lg),
	}
	res.Score = levelScore(lg, singletonAssignment(lg.n), obj, opts)
	res.LevelScores = append(res.LevelScores, res.Score)

	for level := 0; ; level++ {
		assign, moved := clusterLevel(lg, obj, opts)
		if !moved {
			break
		}

		next := aggregate(lg, assign)
		score := levelScore(next, singletonAssignment(next.n), obj, opts)

		res.Blocks = singletonBlocks(next)
		res.Score = score
		res.LevelScores = append(res.LevelScores, score)

		opts.Logger.Debug().
			Int("level", level).
			Int("communities", next.n).
			Float64("score", score).
			Msg("louvain level complete")

		lg = next
	}

	return res, nil
}

// levelGraph is one level of the hierarchy: a weighted undirected graph
// whose nodes are communities of the previous level.
type levelGraph struct {
	n       int
	adj     []map[int]float64 // adj[u][v], u != v
	loops   []float64         // aggregated self-loop weight per node
	deg     []float64         // weighted degree; loops count twice
	m       float64           // total edge weight, loops counted once
	members [][]triples.Leaf  // original leaves contracted into each node
}

// levelFromGonum converts the auxiliary graph into the level-0 graph.
// Nodes are indexed in ascending leaf order for reproducibility.
func levelFromGonum(g *simple.WeightedUndirectedGraph) *levelGraph {
	var leaves []triples.Leaf
	nodes := g.Nodes()
	for nodes.Next() {
		leaves = append(leaves, triples.Leaf(nodes.Node().ID()))
	}
	triples.SortLeaves(leaves)

	index := make(map[triples.Leaf]int, len(leaves))
	lg := &levelGraph{
		n:       len(leaves),
		adj:     make([]map[int]float64, len(leaves)),
		loops:   make([]float64, len(leaves)),
		deg:     make([]float64, len(leaves)),
		members: make([][]triples.Leaf, len(leaves)),
	}
	for i, l := range leaves {
		index[l] = i
		lg.adj[i] = make(map[int]float64)
		lg.members[i] = []triples.Leaf{l}
	}

	it := g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		u := index[triples.Leaf(e.From().ID())]
		v := index[triples.Leaf(e.To().ID())]
		lg.adj[u][v] += e.Weight()
		lg.adj[v][u] += e.Weight()
	}
	lg.finalize()

	return lg
}

// finalize recomputes degrees and the total weight from adj and loops.
func (lg *levelGraph) finalize() {
	lg.m = 0
	for u := 0; u < lg.n; u++ {
		d := 2 * lg.loops[u]
		for v, w := range lg.adj[u] {
			d += w
			if u < v {
				lg.m += w
			}
		}
		lg.deg[u] = d
		lg.m += lg.loops[u]
	}
}

// clusterLevel runs the local-move phase on lg. It returns the final
// node-to-community assignment and whether any node moved.
func clusterLevel(lg *levelGraph, obj ObjectiveFunc, opts Options) ([]int, bool) {
	assign := singletonAssignment(lg.n)

	// An edgeless graph keeps every node in its own community.
	if lg.m == 0 {
		return assign, false
	}

	comSize := make([]int, lg.n)
	comTot := make([]float64, lg.n)
	for u := 0; u < lg.n; u++ {
		comSize[u] = 1
		comTot[u] = lg.deg[u]
	}
	numCommunities := lg.n

	nodes := opts.Rand.Perm(lg.n)
	movedOnLevel := false

	for {
		movedInSweep := false

		for _, x := range nodes {
			cx := assign[x]

			// Moving the last member of a community below the floor is
			// infeasible; skip the node and continue the sweep.
			if comSize[cx] == 1 && numCommunities <= opts.MinCommunities {
				continue
			}

			var bestC int
			if obj == nil {
				bestC = bestByModularity(lg, assign, comTot, x, cx)
			} else {
				bestC = bestByObjective(lg, assign, x, cx, obj, opts)
			}

			if bestC == cx {
				continue
			}

			// A move that would empty cx removes one community; the floor
			// check above already ruled out the infeasible case.
			assign[x] = bestC
			comSize[cx]--
			comSize[bestC]++
			comTot[cx] -= lg.deg[x]
			comTot[bestC] += lg.deg[x]
			if comSize[cx] == 0 {
				numCommunities--
			}
			movedInSweep = true
			movedOnLevel = true
		}

		if !movedInSweep {
			break
		}
	}

	return assign, movedOnLevel
}

// bestByModularity picks the community with the largest closed-form
// modularity gain for node x, preferring the current community cx on
// ties. Gains are computed with x conceptually removed from cx.
func bestByModularity(lg *levelGraph, assign []int, comTot []float64, x, cx int) int {
	kxin := weightToCommunities(lg, assign, x)
	kx := lg.deg[x]
	m2 := 2 * lg.m

	// comTot with x removed from its own community.
	totCx := comTot[cx] - kx

	gain := func(c int, tot float64) float64 {
		return (kxin[c] - tot*kx/m2) / lg.m
	}

	bestC := cx
	bestGain := gain(cx, totCx)

	// Candidate communities in deterministic order.
	cands := make([]int, 0, len(kxin))
	for c := range kxin {
		if c != cx {
			cands = append(cands, c)
		}
	}
	sort.Ints(cands)

	for _, c := range cands {
		if g := gain(c, comTot[c]); g > bestGain {
			bestGain = g
			bestC = c
		}
	}

	return bestC
}

// bestByObjective picks the community whose membership gives the best
// re-scored leaf partition for node x, preferring cx on ties.
func bestByObjective(lg *levelGraph, assign []int, x, cx int, obj ObjectiveFunc, opts Options) int {
	kxin := weightToCommunities(lg, assign, x)

	bestC := cx
	bestScore := obj(flatten(lg, assign))

	cands := make([]int, 0, len(kxin))
	for c := range kxin {
		if c != cx {
			cands = append(cands, c)
		}
	}
	sort.Ints(cands)

	for _, c := range cands {
		assign[x] = c
		score := obj(flatten(lg, assign))
		assign[x] = cx

		if opts.better(score, bestScore) {
			bestScore = score
			bestC = c
		}
	}

	return bestC
}

// weightToCommunities sums the edge weight from x to each neighboring
// community, excluding self-loops. The community of x is always present,
// even when x is its only member.
func weightToCommunities(lg *levelGraph, assign []int, x int) map[int]float64 {
	sums := map[int]float64{assign[x]: 0}
	for y, w := range lg.adj[x] {
		if y == x {
			continue
		}
		sums[assign[y]] += w
	}

	return sums
}

// aggregate contracts every community of lg into a single super-node of
// the next level graph, summing parallel edge weights and turning
// intra-community weight into self-loops.
func aggregate(lg *levelGraph, assign []int) *levelGraph {
	// Renumber non-empty communities densely, ordered by community ID.
	renum := make(map[int]int)
	order := make([]int, 0)
	for _, c := range assign {
		if _, ok := renum[c]; !ok {
			renum[c] = 0
			order = append(order, c)
		}
	}
	sort.Ints(order)
	for i, c := range order {
		renum[c] = i
	}

	next := &levelGraph{
		n:       len(order),
		adj:     make([]map[int]float64, len(order)),
		loops:   make([]float64, len(order)),
		members: make([][]triples.Leaf, len(order)),
		deg:     make([]float64, len(order)),
	}
	for i := range next.adj {
		next.adj[i] = make(map[int]float64)
	}

	for u := 0; u < lg.n; u++ {
		su := renum[assign[u]]
		next.members[su] = append(next.members[su], lg.members[u]...)
		next.loops[su] += lg.loops[u]

		for v, w := range lg.adj[u] {
			if v <= u {
				continue // count each undirected edge once
			}
			sv := renum[assign[v]]
			if su == sv {
				next.loops[su] += w
			} else {
				next.adj[su][sv] += w
				next.adj[sv][su] += w
			}
		}
	}

	for i := range next.members {
		triples.SortLeaves(next.members[i])
	}
	next.finalize()

	return next
}

// levelScore computes the score of the given assignment on lg: modularity
// when obj is nil, otherwise the objective of the flattened partition.
func levelScore(lg *levelGraph, assign []int, obj ObjectiveFunc, opts Options) float64 {
	if obj != nil {
		return obj(flatten(lg, assign))
	}
	return modularity(lg, assign)
}

// modularity computes Newman's modularity of the assignment on lg.
func modularity(lg *levelGraph, assign []int) float64 {
	if lg.m == 0 {
		return 0
	}

	in := make(map[int]float64)
	tot := make(map[int]float64)
	for u := 0; u < lg.n; u++ {
		c := assign[u]
		tot[c] += lg.deg[u]
		in[c] += 2 * lg.loops[u]
		for v, w := range lg.adj[u] {
			if v != u && assign[v] == c {
				in[c] += w
			}
		}
	}

	m2 := 2 * lg.m
	q := 0.0
	for c, totC := range tot {
		q += in[c]/m2 - (totC/m2)*(totC/m2)
	}

	return q
}

// flatten expands a node-to-community assignment into a partition of the
// original leaves, ordered by community ID.
func flatten(lg *levelGraph, assign []int) [][]triples.Leaf {
	byCom := make(map[int][]triples.Leaf)
	for u := 0; u < lg.n; u++ {
		byCom[assign[u]] = append(byCom[assign[u]], lg.members[u]...)
	}

	coms := make([]int, 0, len(byCom))
	for c := range byCom {
		coms = append(coms, c)
	}
	sort.Ints(coms)

	blocks := make([][]triples.Leaf, 0, len(coms))
	for _, c := range coms {
		blocks = append(blocks, triples.SortLeaves(byCom[c]))
	}

	return blocks
}

// singletonAssignment assigns every node to its own community.
func singletonAssignment(n int) []int {
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}
	return assign
}

// singletonBlocks returns the partition in which every node of lg forms
// its own block.
func singletonBlocks(lg *levelGraph) [][]triples.Leaf {
	blocks := make([][]triples.Leaf, lg.n)
	for i := range blocks {
		blocks[i] = append([]triples.Leaf(nil), lg.members[i]...)
	}
	return blocks
}
