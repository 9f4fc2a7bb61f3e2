package partitioning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

func TestGreedy_SweepFindsBridgeCut(t *testing.T) {
	leaves, edges := bridgeGraph()

	// Every sweep grows one full triangle first, so the best prefix is
	// always the bridge cut regardless of tie-breaking.
	for seed := int64(1); seed <= 5; seed++ {
		opts := partitioning.DefaultOptions()
		opts.Rand = rand.New(rand.NewSource(seed))

		score, parts, err := partitioning.Greedy(leaves, cutObjective(edges), opts)
		require.NoError(t, err)

		assert.Equal(t, 1.0, score, "seed %d", seed)
		assert.Equal(t,
			[][]triples.Leaf{{1, 2, 3}, {4, 5, 6}},
			normalizeParts(parts), "seed %d", seed)
	}
}

func TestGreedy_ProducesValidBipartition(t *testing.T) {
	leaves := []triples.Leaf{1, 2, 3, 4, 5}
	edges := []testEdge{
		{1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1},
	}

	opts := partitioning.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(2))

	_, parts, err := partitioning.Greedy(leaves, cutObjective(edges), opts)
	require.NoError(t, err)

	assertBipartition(t, leaves, parts)
}

func TestGreedy_TwoLeaves(t *testing.T) {
	leaves := []triples.Leaf{1, 2}

	score, parts, err := partitioning.Greedy(leaves, cutObjective(nil), partitioning.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0.0, score)
	assert.Equal(t, [][]triples.Leaf{{1}, {2}}, normalizeParts(parts))
}

func TestGreedy_NilObjective(t *testing.T) {
	_, _, err := partitioning.Greedy([]triples.Leaf{1, 2}, nil, partitioning.DefaultOptions())
	assert.ErrorIs(t, err, partitioning.ErrNilObjective)
}

func TestGreedy_TooFewLeaves(t *testing.T) {
	_, _, err := partitioning.Greedy([]triples.Leaf{1}, cutObjective(nil), partitioning.DefaultOptions())
	assert.ErrorIs(t, err, partitioning.ErrTooFewLeaves)
}
