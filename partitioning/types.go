package partitioning

import (
	"errors"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/david-schaller/bmg-edit/triples"
)

// Sentinel errors for the partitioning strategies.
var (
	// ErrTooFewLeaves indicates a strategy was asked to split fewer than
	// two leaves.
	ErrTooFewLeaves = errors.New("partitioning: need at least 2 leaves to bipartition")

	// ErrNilObjective indicates a strategy that scores candidates with a
	// caller-supplied objective was invoked without one.
	ErrNilObjective = errors.New("partitioning: objective function is nil")

	// ErrUnknownMethod indicates an unrecognized partitioning method
	// identifier.
	ErrUnknownMethod = errors.New("partitioning: unknown partitioning method")

	// ErrEmptyGraph indicates a strategy received a graph without vertices.
	ErrEmptyGraph = errors.New("partitioning: graph has no vertices")

	// ErrBadInitial indicates a supplied starting bipartition does not
	// consist of exactly two non-empty sides.
	ErrBadInitial = errors.New("partitioning: initial bipartition must have two non-empty sides")
)

// Method identifies one of the interchangeable partitioning strategies.
type Method string

// The closed enumeration of partitioning methods.
const (
	// MethodMinCut is the exact global minimum cut (Stoer-Wagner) of the
	// weighted auxiliary graph; deterministic, scored by cut weight.
	MethodMinCut Method = "mincut"

	// MethodRandomizedContraction is Karger's repeated random edge
	// contraction; candidate cuts are scored by the caller's objective.
	MethodRandomizedContraction Method = "randomized-contraction"

	// MethodGreedy grows one side leaf by leaf from the empty set, keeping
	// the best prefix bipartition seen during the sweep.
	MethodGreedy Method = "greedy"

	// MethodGradientWalk starts from a random bipartition and follows the
	// best single-leaf move until a local optimum is reached.
	MethodGradientWalk Method = "gradient-walk"

	// MethodLouvain is multi-level hierarchical clustering maximizing
	// modularity of the auxiliary graph.
	MethodLouvain Method = "hierarchical-modularity"

	// MethodLouvainObjective is multi-level hierarchical clustering driven
	// by the caller's objective instead of modularity.
	MethodLouvainObjective Method = "hierarchical-custom-objective"
)

// Valid reports whether m is part of the closed method enumeration.
func (m Method) Valid() bool {
	switch m {
	case MethodMinCut, MethodRandomizedContraction, MethodGreedy,
		MethodGradientWalk, MethodLouvain, MethodLouvainObjective:
		return true
	}
	return false
}

// ObjectiveFunc scores a candidate partition. It must be pure: it is
// called many times per strategy invocation, possibly from several
// goroutines at once. Whether lower or higher values are better is
// decided by Options.Minimize. Closures capture any additional context
// (domain graphs, colorings) the score needs.
type ObjectiveFunc func(parts [][]triples.Leaf) float64

// DefaultRuns is the default number of independent randomized-contraction
// runs per invocation.
const DefaultRuns = 10

// DefaultSeed seeds the pseudo-random source when the caller supplies
// none, so that strategies are reproducible by default.
const DefaultSeed = 1

// Options configures the randomized and hierarchical strategies.
//   - Rand: injected pseudo-random source for shuffles and tie-breaks.
//   - Minimize: true if lower objective values are better.
//   - Runs: independent repeats for randomized contraction.
//   - MinCommunities: the community floor for Louvain (at least 2 for a
//     usable split).
//   - Initial: optional starting bipartition for the gradient walk.
//   - Logger: progress logging; zerolog.Nop() by default.
type Options struct {
	Rand           *rand.Rand
	Minimize       bool
	Runs           int
	MinCommunities int
	Initial        [][]triples.Leaf
	Logger         zerolog.Logger
}

// DefaultOptions returns the options shared by all strategies: minimize,
// DefaultRuns contraction runs, a two-community floor, a silent logger
// and a DefaultSeed-seeded random source (created lazily by normalize).
func DefaultOptions() Options {
	return Options{
		Minimize:       true,
		Runs:           DefaultRuns,
		MinCommunities: 2,
		Logger:         zerolog.Nop(),
	}
}

// normalize fills the zero values a caller left unset.
func (o *Options) normalize() {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(DefaultSeed))
	}
	if o.Runs <= 0 {
		o.Runs = DefaultRuns
	}
	if o.MinCommunities <= 0 {
		o.MinCommunities = 2
	}
}

// better reports whether score a improves on score b under the configured
// optimization direction.
func (o *Options) better(a, b float64) bool {
	if o.Minimize {
		return a < b
	}
	return a > b
}

// worst returns the sentinel no-result score for the configured direction.
func (o *Options) worst() float64 {
	if o.Minimize {
		return math.Inf(1)
	}
	return math.Inf(-1)
}
