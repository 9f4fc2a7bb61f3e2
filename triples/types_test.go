package triples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schaller/bmg-edit/triples"
)

// TestNew_RejectsNonDistinct verifies that a triple must consist of three
// pairwise distinct leaves.
func TestNew_RejectsNonDistinct(t *testing.T) {
	_, err := triples.New(1, 1, 2)
	assert.ErrorIs(t, err, triples.ErrNotDistinct)

	_, err = triples.New(1, 2, 1)
	assert.ErrorIs(t, err, triples.ErrNotDistinct)

	_, err = triples.New(2, 1, 1)
	assert.ErrorIs(t, err, triples.ErrNotDistinct)

	tr, err := triples.New(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, triples.Triple{A: 1, B: 2, C: 3}, tr)
}

// TestRestrict_KeepsOnlyFullyContainedTriples verifies the basic
// restriction semantics: a triple survives only when all three leaves lie
// in the subset.
func TestRestrict_KeepsOnlyFullyContainedTriples(t *testing.T) {
	r := []triples.Triple{
		{A: 1, B: 2, C: 3},
		{A: 1, B: 2, C: 4},
		{A: 3, B: 4, C: 5},
	}

	got := triples.Restrict(r, []triples.Leaf{1, 2, 3})
	assert.Equal(t, []triples.Triple{{A: 1, B: 2, C: 3}}, got)

	// The input slice is never mutated.
	assert.Len(t, r, 3)
}

// TestRestrict_Idempotence verifies that restricting to a subset and then
// to a further subset equals restricting directly to the further subset.
func TestRestrict_Idempotence(t *testing.T) {
	r := []triples.Triple{
		{A: 1, B: 2, C: 3},
		{A: 1, B: 2, C: 4},
		{A: 2, B: 3, C: 4},
		{A: 4, B: 5, C: 6},
	}
	mid := []triples.Leaf{1, 2, 3, 4}
	sub := []triples.Leaf{1, 2, 3}

	twice := triples.Restrict(triples.Restrict(r, mid), sub)
	direct := triples.Restrict(r, sub)

	assert.Equal(t, direct, twice)
}

// TestLeaves collects the distinct leaves of a triple set in order.
func TestLeaves(t *testing.T) {
	r := []triples.Triple{
		{A: 5, B: 2, C: 9},
		{A: 2, B: 5, C: 1},
	}

	assert.Equal(t, []triples.Leaf{1, 2, 5, 9}, triples.Leaves(r))
}
