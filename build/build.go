// Package build implements the recursive tree-reconstruction algorithms
// at the heart of best-match-graph editing: the BUILD algorithm of Aho et
// al. for informative triples, and the MTT variant that additionally
// avoids displaying forbidden triples.
//
// At every recursive call the current leaf set is reduced to an auxiliary
// graph (package ahograph) whose connected components are the candidate
// split. When the candidate split is degenerate (a single component) and
// inconsistencies are allowed, one of the interchangeable partitioning
// strategies (package partitioning) forces a split and its score is added
// to the running total of the build. Multi-way splits can be binarized
// into caterpillar chains or weight-balanced groupings.
//
// Failure is an explicit error, never a partial tree: if any leaf subset
// admits no tree, the whole build fails.
package build

import (
	"math/rand"

	"github.com/david-schaller/bmg-edit/ahograph"
	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/tree"
	"github.com/david-schaller/bmg-edit/triples"
)

// Builder reconstructs a tree over a fixed leaf set from informative
// (and optionally forbidden) triples. A Builder is immutable after New
// and safe for concurrent Build calls: every call owns its own random
// source and cost accumulator.
type Builder struct {
	leaves []triples.Leaf
	r      []triples.Triple
	cfg    config
}

// Result is the outcome of one Build call.
//   - Root: the reconstructed tree.
//   - TotalCost: the accumulated score of every forced split, one
//     contribution per recursive call that invoked a partitioning
//     strategy; zero when the triples were consistent throughout.
type Result struct {
	Root      *tree.Node
	TotalCost float64
}

// New validates the configuration and creates a Builder for the given
// leaves and informative triples r.
//
// Error conditions (all surfaced here, never deferred into recursion):
//   - ErrEmptyLeafSet: leaves is empty.
//   - partitioning.ErrUnknownMethod: unrecognized partitioning method.
//   - ErrUnknownBinarization: unrecognized binarization mode.
//   - ErrMissingObjective: the chosen method scores candidates with an
//     objective function, but none was supplied.
func New(leaves []triples.Leaf, r []triples.Triple, opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(leaves) == 0 {
		return nil, ErrEmptyLeafSet
	}
	if !cfg.method.Valid() {
		return nil, partitioning.ErrUnknownMethod
	}
	if !cfg.binarize.Valid() {
		return nil, ErrUnknownBinarization
	}
	if cfg.objective == nil && needsObjective(cfg.method) {
		return nil, ErrMissingObjective
	}

	ls := triples.SortLeaves(append([]triples.Leaf(nil), leaves...))
	rs := append([]triples.Triple(nil), r...)

	return &Builder{leaves: ls, r: rs, cfg: cfg}, nil
}

// needsObjective reports whether the method scores candidate partitions
// with a caller-supplied objective.
func needsObjective(m partitioning.Method) bool {
	switch m {
	case partitioning.MethodRandomizedContraction, partitioning.MethodGreedy,
		partitioning.MethodGradientWalk, partitioning.MethodLouvainObjective:
		return true
	}
	return false
}

// Build runs the recursion and returns the reconstructed tree together
// with the total cost of all forced splits.
//
// With a forbidden set the MTT recursion runs, otherwise plain BUILD.
// Build returns ErrNoTree when some leaf subset is inconsistent and
// inconsistencies are disallowed; in that case no tree is returned.
func (b *Builder) Build() (Result, error) {
	run := &runState{
		cfg: b.cfg,
		rng: b.cfg.newRand(),
	}

	var (
		root *tree.Node
		err  error
	)
	if len(b.cfg.forbidden) > 0 {
		root, err = run.mtt(b.leaves, b.r, b.cfg.forbidden)
	} else {
		root, err = run.aho(b.leaves, b.r)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Root: root, TotalCost: run.total}, nil
}

// runState is the per-call state of one Build invocation: the running
// cost total and the pseudo-random source. It is never shared between
// calls, so independent top-level builds may run concurrently.
type runState struct {
	cfg   config
	rng   *rand.Rand
	total float64
}

// trivial handles leaf sets of size one and two.
func (rs *runState) trivial(leaves []triples.Leaf) *tree.Node {
	if len(leaves) == 1 {
		return tree.NewLeaf(leaves[0])
	}

	return tree.NewInner(tree.NewLeaf(leaves[0]), tree.NewLeaf(leaves[1]))
}

// aho is the recursive BUILD algorithm on informative triples only.
func (rs *runState) aho(leaves []triples.Leaf, r []triples.Triple) (*tree.Node, error) {
	if len(leaves) <= 2 {
		return rs.trivial(leaves), nil
	}

	var opts []ahograph.Option
	if rs.cfg.weightedMinCut {
		opts = append(opts, ahograph.WithWeighted())
		if rs.cfg.tripleWeights != nil {
			opts = append(opts, ahograph.WithTripleWeights(rs.cfg.tripleWeights))
		}
	}
	g := ahograph.Aho(leaves, r, opts...)
	parts := ahograph.Components(g)

	if len(parts) < 2 {
		if !rs.cfg.allowInconsistency {
			return nil, ErrNoTree
		}
		forced, err := rs.forceSplit(leaves, g)
		if err != nil {
			return nil, err
		}
		parts = forced
	}

	children := make([]*tree.Node, 0, len(parts))
	for _, part := range parts {
		child, err := rs.aho(part, triples.Restrict(r, part))
		if err != nil {
			return nil, err // a failed subtree fails the whole build
		}
		children = append(children, child)
	}

	return rs.assemble(children)
}

// mtt is the recursive MTT algorithm on informative and forbidden
// triples.
func (rs *runState) mtt(leaves []triples.Leaf, r, f []triples.Triple) (*tree.Node, error) {
	if len(leaves) <= 2 {
		return rs.trivial(leaves), nil
	}

	p, g := ahograph.MTT(leaves, r, f)
	parts := p.Blocks()

	if len(parts) < 2 {
		if !rs.cfg.allowInconsistency {
			return nil, ErrNoTree
		}
		forced, err := rs.forceSplit(leaves, g)
		if err != nil {
			return nil, err
		}
		parts = forced
	}

	children := make([]*tree.Node, 0, len(parts))
	for _, part := range parts {
		child, err := rs.mtt(part, triples.Restrict(r, part), triples.Restrict(f, part))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return rs.assemble(children)
}
