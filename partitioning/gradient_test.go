package partitioning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

func TestGradientWalk_StopsAtLocalOptimum(t *testing.T) {
	// On the unit 4-cycle 1-2-3-4-1 the split {1} vs {2,3,4} has cut 2
	// and no single move improves on that, so the walk must stop there.
	leaves := []triples.Leaf{1, 2, 3, 4}
	edges := []testEdge{
		{1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 1, 1},
	}

	opts := partitioning.DefaultOptions()
	opts.Initial = [][]triples.Leaf{{1}, {2, 3, 4}}

	score, parts, err := partitioning.GradientWalk(leaves, cutObjective(edges), opts)
	require.NoError(t, err)

	assert.Equal(t, 2.0, score)
	assert.Equal(t, [][]triples.Leaf{{1}, {2, 3, 4}}, parts)
}

func TestGradientWalk_ImprovesBadStart(t *testing.T) {
	// Starting from the worst 4-cycle split (cut 4) one move reaches a
	// cut-2 local optimum.
	leaves := []triples.Leaf{1, 2, 3, 4}
	edges := []testEdge{
		{1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 1, 1},
	}

	opts := partitioning.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(5))
	opts.Initial = [][]triples.Leaf{{1, 3}, {2, 4}}

	score, parts, err := partitioning.GradientWalk(leaves, cutObjective(edges), opts)
	require.NoError(t, err)

	assert.Equal(t, 2.0, score)
	assertBipartition(t, leaves, parts)
}

func TestGradientWalk_RandomStartIsValid(t *testing.T) {
	leaves, edges := bridgeGraph()

	opts := partitioning.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(9))

	_, parts, err := partitioning.GradientWalk(leaves, cutObjective(edges), opts)
	require.NoError(t, err)

	assertBipartition(t, leaves, parts)
}

func TestGradientWalk_NeverEmptiesASide(t *testing.T) {
	// An objective rewarding lopsided splits must still leave both sides
	// non-empty.
	leaves := []triples.Leaf{1, 2, 3, 4, 5}
	lopsided := func(parts [][]triples.Leaf) float64 {
		d := len(parts[0]) - len(parts[1])
		if d < 0 {
			d = -d
		}
		return float64(-d)
	}

	opts := partitioning.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(4))

	_, parts, err := partitioning.GradientWalk(leaves, lopsided, opts)
	require.NoError(t, err)

	assertBipartition(t, leaves, parts)
}

func TestGradientWalk_BadInitial(t *testing.T) {
	opts := partitioning.DefaultOptions()
	opts.Initial = [][]triples.Leaf{{1, 2}, {}}

	_, _, err := partitioning.GradientWalk([]triples.Leaf{1, 2}, cutObjective(nil), opts)
	assert.ErrorIs(t, err, partitioning.ErrBadInitial)
}

func TestGradientWalk_NilObjective(t *testing.T) {
	_, _, err := partitioning.GradientWalk([]triples.Leaf{1, 2}, nil, partitioning.DefaultOptions())
	assert.ErrorIs(t, err, partitioning.ErrNilObjective)
}

func TestGradientWalk_TooFewLeaves(t *testing.T) {
	_, _, err := partitioning.GradientWalk([]triples.Leaf{1}, cutObjective(nil), partitioning.DefaultOptions())
	assert.ErrorIs(t, err, partitioning.ErrTooFewLeaves)
}
