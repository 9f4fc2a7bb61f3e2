package partitioning

import (
	"github.com/david-schaller/bmg-edit/triples"
)

// Greedy performs one randomized greedy bipartition sweep over the given
// leaves. Starting from the degenerate split (empty, all), it repeatedly
// moves the single remaining leaf whose move yields the best objective
// value for the resulting prefix bipartition, breaking ties uniformly at
// random, and records every prefix visited. The best-scoring prefix over
// the whole sweep is returned; among equally good prefixes one is chosen
// uniformly at random.
//
// A single sweep is a non-deterministic heuristic; callers wanting higher
// quality run several sweeps and keep the global best (the recursive tree
// builder does this via its repeat count).
//
// Error conditions:
//   - ErrNilObjective: obj is nil.
//   - ErrTooFewLeaves: fewer than two leaves.
//
// Complexity: O(n^2) objective evaluations for n leaves.
func Greedy(leaves []triples.Leaf, obj ObjectiveFunc, opts Options) (float64, [][]triples.Leaf, error) {
	if obj == nil {
		return 0, nil, ErrNilObjective
	}
	if len(leaves) < 2 {
		return 0, nil, ErrTooFewLeaves
	}
	opts.normalize()

	ordered := triples.SortLeaves(append([]triples.Leaf(nil), leaves...))

	chosen := make(map[triples.Leaf]struct{}, len(ordered))
	rest := make(map[triples.Leaf]struct{}, len(ordered))
	for _, l := range ordered {
		rest[l] = struct{}{}
	}

	bestScore := opts.worst()
	var bestSnapshots [][][]triples.Leaf

	for step := 0; step < len(ordered)-1; step++ {
		// Best single move of this step; ties collected for random choice.
		stepScore := opts.worst()
		var stepCandidates []triples.Leaf
		first := true

		for _, x := range ordered {
			if _, ok := rest[x]; !ok {
				continue
			}
			move(rest, chosen, x)
			score := obj(snapshot(ordered, chosen))
			move(chosen, rest, x)

			switch {
			case first || opts.better(score, stepScore):
				stepScore = score
				stepCandidates = stepCandidates[:0]
				stepCandidates = append(stepCandidates, x)
				first = false
			case score == stepScore:
				stepCandidates = append(stepCandidates, x)
			}
		}

		x := stepCandidates[opts.Rand.Intn(len(stepCandidates))]
		move(rest, chosen, x)

		switch {
		case opts.better(stepScore, bestScore):
			bestScore = stepScore
			bestSnapshots = bestSnapshots[:0]
			bestSnapshots = append(bestSnapshots, snapshot(ordered, chosen))
		case stepScore == bestScore:
			bestSnapshots = append(bestSnapshots, snapshot(ordered, chosen))
		}
	}

	return bestScore, bestSnapshots[opts.Rand.Intn(len(bestSnapshots))], nil
}

// move transfers x between the two sides of the working bipartition.
func move(from, to map[triples.Leaf]struct{}, x triples.Leaf) {
	delete(from, x)
	to[x] = struct{}{}
}

// snapshot materializes the working bipartition as two sorted leaf
// slices (chosen side first), preserving the order of ordered.
func snapshot(ordered []triples.Leaf, chosen map[triples.Leaf]struct{}) [][]triples.Leaf {
	a := make([]triples.Leaf, 0, len(chosen))
	b := make([]triples.Leaf, 0, len(ordered)-len(chosen))
	for _, l := range ordered {
		if _, ok := chosen[l]; ok {
			a = append(a, l)
		} else {
			b = append(b, l)
		}
	}

	return [][]triples.Leaf{a, b}
}
