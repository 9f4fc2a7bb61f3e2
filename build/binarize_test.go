package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schaller/bmg-edit/build"
	"github.com/david-schaller/bmg-edit/tree"
	"github.com/david-schaller/bmg-edit/triples"
)

// assertBinary checks that every inner node of the tree has exactly two
// children.
func assertBinary(t *testing.T, n *tree.Node) {
	t.Helper()

	if n.IsLeaf() {
		return
	}
	require.Len(t, n.Children(), 2, "multifurcation at %s", n)
	for _, c := range n.Children() {
		assertBinary(t, c)
	}
}

func TestBuild_CaterpillarBinarization(t *testing.T) {
	// The root split {1,2} vs 3 vs 4 has three parts; the caterpillar
	// chain resolves it into ((1,2),(3,4)).
	leaves := []triples.Leaf{1, 2, 3, 4}
	r := []triples.Triple{
		{A: 1, B: 2, C: 3},
		{A: 1, B: 2, C: 4},
	}

	b, err := build.New(leaves, r, build.WithBinarize(build.BinarizeCaterpillar))
	require.NoError(t, err)

	res, err := b.Build()
	require.NoError(t, err)

	assertBinary(t, res.Root)
	want := tree.NewInner(
		tree.NewInner(tree.NewLeaf(1), tree.NewLeaf(2)),
		tree.NewInner(tree.NewLeaf(3), tree.NewLeaf(4)),
	)
	assert.True(t, tree.TopologyEqual(want, res.Root), "got %s", res.Root)
}

func TestBuild_BalancedBinarization(t *testing.T) {
	// Without triples all five leaves form one five-way split; balanced
	// binarization must yield a binary tree with a 3-vs-2 root split.
	leaves := []triples.Leaf{1, 2, 3, 4, 5}

	b, err := build.New(leaves, nil, build.WithBinarize(build.BinarizeBalanced))
	require.NoError(t, err)

	res, err := b.Build()
	require.NoError(t, err)

	assertBinary(t, res.Root)
	assert.Equal(t, leaves, res.Root.Leaves())

	sizes := []int{
		len(res.Root.Children()[0].Leaves()),
		len(res.Root.Children()[1].Leaves()),
	}
	assert.ElementsMatch(t, []int{2, 3}, sizes)
}

func TestBuild_NoBinarizationKeepsMultifurcation(t *testing.T) {
	leaves := []triples.Leaf{1, 2, 3, 4}

	b, err := build.New(leaves, nil)
	require.NoError(t, err)

	res, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, res.Root.Children(), 4)
}

func TestBuild_BinarizationPreservesDisplayedTriples(t *testing.T) {
	// Binarizing only refines the tree: every triple displayed by the
	// multifurcating result must still be displayed afterwards.
	leaves := []triples.Leaf{1, 2, 3, 4, 5}
	r := []triples.Triple{
		{A: 1, B: 2, C: 3},
		{A: 1, B: 2, C: 4},
		{A: 1, B: 2, C: 5},
	}

	plain, err := build.New(leaves, r)
	require.NoError(t, err)
	plainRes, err := plain.Build()
	require.NoError(t, err)

	cat, err := build.New(leaves, r, build.WithBinarize(build.BinarizeCaterpillar))
	require.NoError(t, err)
	catRes, err := cat.Build()
	require.NoError(t, err)

	assertBinary(t, catRes.Root)
	for _, tr := range plainRes.Root.Triples() {
		assert.Contains(t, catRes.Root.Triples(), tr)
	}
}
