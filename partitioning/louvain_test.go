package partitioning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

func TestLouvain_RecoversDisconnectedTriangles(t *testing.T) {
	// Two disconnected unit triangles: modularity is maximized by exactly
	// the two triangles (Q = 1/2), so every seed must recover them.
	leaves := []triples.Leaf{1, 2, 3, 4, 5, 6}
	g := buildGraph(leaves, []testEdge{
		{1, 2, 1}, {1, 3, 1}, {2, 3, 1},
		{4, 5, 1}, {4, 6, 1}, {5, 6, 1},
	})

	for seed := int64(1); seed <= 5; seed++ {
		opts := partitioning.DefaultOptions()
		opts.Rand = rand.New(rand.NewSource(seed))

		res, err := partitioning.Louvain(g, nil, opts)
		require.NoError(t, err)

		assert.Equal(t,
			[][]triples.Leaf{{1, 2, 3}, {4, 5, 6}},
			normalizeParts(res.Blocks), "seed %d", seed)
		assert.InDelta(t, 0.5, res.Score, 1e-12, "seed %d", seed)
	}
}

func TestLouvain_LevelScoresAreMonotone(t *testing.T) {
	leaves := []triples.Leaf{1, 2, 3, 4, 5, 6}
	g := buildGraph(leaves, []testEdge{
		{1, 2, 1}, {1, 3, 1}, {2, 3, 1},
		{4, 5, 1}, {4, 6, 1}, {5, 6, 1},
	})

	res, err := partitioning.Louvain(g, nil, partitioning.DefaultOptions())
	require.NoError(t, err)

	require.NotEmpty(t, res.LevelScores)
	for i := 1; i < len(res.LevelScores); i++ {
		assert.GreaterOrEqual(t, res.LevelScores[i], res.LevelScores[i-1])
	}
	assert.Equal(t, res.Score, res.LevelScores[len(res.LevelScores)-1])

	// Singleton modularity of six degree-2 nodes is -1/6.
	assert.InDelta(t, -1.0/6.0, res.LevelScores[0], 1e-12)
}

func TestLouvain_EdgelessGraphKeepsSingletons(t *testing.T) {
	leaves := []triples.Leaf{1, 2, 3}
	g := buildGraph(leaves, nil)

	res, err := partitioning.Louvain(g, nil, partitioning.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, [][]triples.Leaf{{1}, {2}, {3}}, res.Blocks)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, []float64{0}, res.LevelScores)
}

func TestLouvain_CommunityFloorIsRespected(t *testing.T) {
	// A single connected triangle would collapse into one community, but
	// the two-community floor forbids the final merge.
	leaves := []triples.Leaf{1, 2, 3}
	g := buildGraph(leaves, []testEdge{
		{1, 2, 1}, {1, 3, 1}, {2, 3, 1},
	})

	res, err := partitioning.Louvain(g, nil, partitioning.DefaultOptions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(res.Blocks), 2)

	var all []triples.Leaf
	for _, b := range res.Blocks {
		all = append(all, b...)
	}
	assert.ElementsMatch(t, leaves, all)
}

func TestLouvain_CustomObjectiveMergesDownToFloor(t *testing.T) {
	// Minimizing the block count on a path must merge communities until
	// the two-community floor stops it.
	leaves := []triples.Leaf{1, 2, 3, 4}
	g := buildGraph(leaves, []testEdge{
		{1, 2, 1}, {2, 3, 1}, {3, 4, 1},
	})
	blockCount := func(parts [][]triples.Leaf) float64 {
		return float64(len(parts))
	}

	opts := partitioning.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(6))

	res, err := partitioning.Louvain(g, blockCount, opts)
	require.NoError(t, err)

	assert.Len(t, res.Blocks, 2)
	assert.Equal(t, 2.0, res.Score)

	var all []triples.Leaf
	for _, b := range res.Blocks {
		all = append(all, b...)
	}
	assert.ElementsMatch(t, leaves, all)
}

func TestLouvain_EmptyGraph(t *testing.T) {
	g := buildGraph(nil, nil)

	_, err := partitioning.Louvain(g, nil, partitioning.DefaultOptions())
	assert.ErrorIs(t, err, partitioning.ErrEmptyGraph)
}
