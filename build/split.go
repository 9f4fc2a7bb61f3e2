package build

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

// forceSplit invokes the configured partitioning strategy on the
// auxiliary graph of an inconsistent leaf subset and accumulates the
// incurred score into the running total.
func (rs *runState) forceSplit(leaves []triples.Leaf, g *simple.WeightedUndirectedGraph) ([][]triples.Leaf, error) {
	opts := partitioning.DefaultOptions()
	opts.Rand = rs.rng
	opts.Minimize = rs.cfg.minimize
	opts.Runs = rs.cfg.repeats
	opts.MinCommunities = rs.cfg.minCommunities
	opts.Logger = rs.cfg.logger

	var (
		score float64
		parts [][]triples.Leaf
		err   error
	)

	switch rs.cfg.method {
	case partitioning.MethodMinCut:
		score, parts, err = partitioning.MinCut(g)

	case partitioning.MethodRandomizedContraction:
		score, parts, err = partitioning.RandomizedContraction(g, rs.cfg.objective, opts)

	case partitioning.MethodGreedy:
		score, parts, err = rs.bestOfRepeats(opts, func() (float64, [][]triples.Leaf, error) {
			return partitioning.Greedy(leaves, rs.cfg.objective, opts)
		})

	case partitioning.MethodGradientWalk:
		score, parts, err = rs.bestOfRepeats(opts, func() (float64, [][]triples.Leaf, error) {
			return partitioning.GradientWalk(leaves, rs.cfg.objective, opts)
		})

	case partitioning.MethodLouvain:
		var res partitioning.LouvainResult
		res, err = partitioning.Louvain(g, nil, opts)
		score, parts = res.Score, res.Blocks

	case partitioning.MethodLouvainObjective:
		var res partitioning.LouvainResult
		res, err = partitioning.Louvain(g, rs.cfg.objective, opts)
		score, parts = res.Score, res.Blocks

	default:
		return nil, partitioning.ErrUnknownMethod
	}
	if err != nil {
		return nil, err
	}

	rs.total += score

	rs.cfg.logger.Debug().
		Str("method", string(rs.cfg.method)).
		Int("leaves", len(leaves)).
		Int("parts", len(parts)).
		Float64("score", score).
		Msg("forced split of inconsistent leaf subset")

	return parts, nil
}

// bestOfRepeats runs one randomized sweep several times and keeps the
// best-scoring partition; ties go to the earliest repeat.
func (rs *runState) bestOfRepeats(opts partitioning.Options, sweep func() (float64, [][]triples.Leaf, error)) (float64, [][]triples.Leaf, error) {
	var (
		bestScore float64
		bestParts [][]triples.Leaf
	)

	for i := 0; i < rs.cfg.repeats; i++ {
		score, parts, err := sweep()
		if err != nil {
			return 0, nil, err
		}
		if i == 0 || better(opts, score, bestScore) {
			bestScore, bestParts = score, parts
		}
	}

	return bestScore, bestParts, nil
}

// better mirrors the optimization direction of the strategy options.
func better(opts partitioning.Options, a, b float64) bool {
	if opts.Minimize {
		return a < b
	}
	return a > b
}
