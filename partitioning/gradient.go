package partitioning

import (
	"github.com/david-schaller/bmg-edit/triples"
)

// GradientWalk performs a steepest-descent local search over bipartitions
// of the given leaves. It starts from a uniformly random bipartition (or
// from opts.Initial when supplied), and repeatedly applies the single-leaf
// move, from either side to the other, that most improves the objective.
// Moves that would empty a side are never considered. The walk stops at
// the first local optimum: a state in which no single move improves the
// objective.
//
// A single walk finds only a local optimum; callers combine several
// independent restarts by keeping the globally best result.
//
// Error conditions:
//   - ErrNilObjective: obj is nil.
//   - ErrTooFewLeaves: fewer than two leaves.
//   - ErrBadInitial: opts.Initial is not a bipartition of the leaves.
//
// Complexity: O(n) objective evaluations per move for n leaves.
func GradientWalk(leaves []triples.Leaf, obj ObjectiveFunc, opts Options) (float64, [][]triples.Leaf, error) {
	if obj == nil {
		return 0, nil, ErrNilObjective
	}
	if len(leaves) < 2 {
		return 0, nil, ErrTooFewLeaves
	}
	opts.normalize()

	ordered := triples.SortLeaves(append([]triples.Leaf(nil), leaves...))

	sides := [2]map[triples.Leaf]struct{}{
		make(map[triples.Leaf]struct{}),
		make(map[triples.Leaf]struct{}),
	}
	lookup := make(map[triples.Leaf]int, len(ordered))

	switch {
	case opts.Initial == nil:
		// Random half-half start.
		for k, m := range opts.Rand.Perm(len(ordered)) {
			x := ordered[m]
			side := 0
			if 2*k >= len(ordered) {
				side = 1
			}
			sides[side][x] = struct{}{}
			lookup[x] = side
		}
	case len(opts.Initial) == 2 && len(opts.Initial[0]) > 0 && len(opts.Initial[1]) > 0:
		for i := 0; i < 2; i++ {
			for _, x := range opts.Initial[i] {
				sides[i][x] = struct{}{}
				lookup[x] = i
			}
		}
	default:
		return 0, nil, ErrBadInitial
	}

	bestScore := obj(walkSnapshot(ordered, lookup))
	bestParts := walkSnapshot(ordered, lookup)

	for {
		stepScore := opts.worst()
		var stepCandidates []triples.Leaf
		first := true

		for _, x := range ordered {
			from := sides[lookup[x]]
			to := sides[(lookup[x]+1)%2]

			// Never empty a side.
			if len(from) == 1 {
				continue
			}

			move(from, to, x)
			lookup[x] = (lookup[x] + 1) % 2
			score := obj(walkSnapshot(ordered, lookup))
			move(to, from, x)
			lookup[x] = (lookup[x] + 1) % 2

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

		if !opts.better(stepScore, bestScore) {
			break // local optimum reached
		}

		x := stepCandidates[opts.Rand.Intn(len(stepCandidates))]
		move(sides[lookup[x]], sides[(lookup[x]+1)%2], x)
		lookup[x] = (lookup[x] + 1) % 2

		bestScore = stepScore
		bestParts = walkSnapshot(ordered, lookup)
	}

	return bestScore, bestParts, nil
}

// walkSnapshot materializes the two sides in the deterministic order of
// ordered.
func walkSnapshot(ordered []triples.Leaf, lookup map[triples.Leaf]int) [][]triples.Leaf {
	parts := [][]triples.Leaf{
		make([]triples.Leaf, 0, len(ordered)),
		make([]triples.Leaf, 0, len(ordered)),
	}
	for _, l := range ordered {
		parts[lookup[l]] = append(parts[lookup[l]], l)
	}

	return parts
}
