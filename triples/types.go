// Package triples defines the Leaf and Triple value types shared by all
// tree-reconstruction algorithms in this module, together with the pure
// restriction operation used by the recursive builders.
//
// A triple (a, b, c), written ab|c, asserts that leaves a and b are more
// closely related to each other than either is to c. Two kinds of triple
// sets appear throughout the module:
//
//   - informative triples R: relations a reconstructed tree must display,
//   - forbidden triples  F: relations the tree must not display.
//
// Both are plain []Triple slices; the distinction is purely by usage.
//
// Errors:
//
//	ErrNotDistinct - the three leaves of a triple are not pairwise distinct.
package triples

import (
	"errors"
	"sort"
)

// ErrNotDistinct indicates a triple whose leaves are not pairwise distinct.
var ErrNotDistinct = errors.New("triples: leaves of a triple must be pairwise distinct")

// Leaf identifies a single element of the leaf universe.
//
// Leaf implements gonum's graph.Node, so a set of leaves can be inserted
// directly into a gonum graph container (the auxiliary graphs built in
// package ahograph use exactly this).
type Leaf int64

// ID returns the gonum node ID of the leaf.
func (l Leaf) ID() int64 { return int64(l) }

// Triple is the ordered relation ab|c: A and B are more closely related
// to each other than either is to C. Triple is a comparable value type,
// so it can be used directly as a map key.
type Triple struct {
	A, B, C Leaf
}

// New validates and constructs the triple ab|c.
// It returns ErrNotDistinct unless a, b and c are pairwise distinct.
func New(a, b, c Leaf) (Triple, error) {
	if a == b || a == c || b == c {
		return Triple{}, ErrNotDistinct
	}

	return Triple{A: a, B: b, C: c}, nil
}

// Weights assigns an optional weight to individual triples. It is consumed
// by the weighted auxiliary-graph construction; triples absent from the
// map default to weight 1.
type Weights map[Triple]float64

// Restrict returns the subset of ts whose three leaves all lie in subset.
//
// Restrict is a pure function: it never mutates ts and always returns a
// freshly allocated slice, so restricted triple sets of recursive calls
// cannot alias their parent's. Restriction is idempotent: restricting to
// a subset and then to a further subset equals restricting directly to
// the further subset.
//
// Complexity: O(|subset| + |ts|) time, O(|subset|) auxiliary memory.
func Restrict(ts []Triple, subset []Leaf) []Triple {
	in := make(map[Leaf]struct{}, len(subset))
	for _, l := range subset {
		in[l] = struct{}{}
	}

	res := make([]Triple, 0, len(ts))
	for _, t := range ts {
		if _, ok := in[t.A]; !ok {
			continue
		}
		if _, ok := in[t.B]; !ok {
			continue
		}
		if _, ok := in[t.C]; !ok {
			continue
		}
		res = append(res, t)
	}

	return res
}

// SortLeaves sorts a leaf slice in place and returns it. All algorithms in
// this module sort leaf collections before iterating or sampling, so that
// runs with a fixed random seed are reproducible.
func SortLeaves(ls []Leaf) []Leaf {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// Leaves collects the distinct leaves mentioned by ts, in ascending order.
func Leaves(ts []Triple) []Leaf {
	seen := make(map[Leaf]struct{}, 3*len(ts))
	for _, t := range ts {
		seen[t.A] = struct{}{}
		seen[t.B] = struct{}{}
		seen[t.C] = struct{}{}
	}

	out := make([]Leaf, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}

	return SortLeaves(out)
}
