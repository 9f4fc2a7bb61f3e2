package build

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

// Sentinel errors for the recursive tree builder.
var (
	// ErrNoTree indicates the triple set is inconsistent on some leaf
	// subset and inconsistencies are disallowed: no tree displays all
	// informative triples (and avoids all forbidden ones).
	ErrNoTree = errors.New("build: triple set admits no tree")

	// ErrEmptyLeafSet indicates no leaves were supplied.
	ErrEmptyLeafSet = errors.New("build: empty leaf set")

	// ErrUnknownBinarization indicates an unrecognized binarization mode.
	ErrUnknownBinarization = errors.New("build: unknown binarization mode")

	// ErrMissingObjective indicates the configured partitioning method
	// scores candidates with an objective function, but none was supplied.
	ErrMissingObjective = errors.New("build: partitioning method requires an objective function")
)

// BinarizeMode selects how multi-way splits are reduced to binary ones.
type BinarizeMode string

// The closed enumeration of binarization modes.
const (
	// BinarizeNone keeps multi-way splits as multifurcations.
	BinarizeNone BinarizeMode = "none"

	// BinarizeCaterpillar attaches the parts of a multi-way split one at
	// a time to a growing chain of fresh inner nodes.
	BinarizeCaterpillar BinarizeMode = "caterpillar"

	// BinarizeBalanced groups the parts of a multi-way split by the
	// largest-differencing number-partitioning heuristic, keeping the
	// left and right subtree sizes as close as possible at every level.
	BinarizeBalanced BinarizeMode = "balanced"
)

// Valid reports whether m is part of the closed mode enumeration.
func (m BinarizeMode) Valid() bool {
	switch m {
	case BinarizeNone, BinarizeCaterpillar, BinarizeBalanced:
		return true
	}
	return false
}

// DefaultRepeats is the default number of independent repeats for the
// randomized strategies (greedy and gradient-walk sweeps, contraction
// runs).
const DefaultRepeats = 5

// config collects the builder configuration assembled by Options.
type config struct {
	forbidden          []triples.Triple
	allowInconsistency bool
	method             partitioning.Method
	binarize           BinarizeMode
	objective          partitioning.ObjectiveFunc
	minimize           bool
	repeats            int
	seed               int64
	weightedMinCut     bool
	tripleWeights      triples.Weights
	minCommunities     int
	logger             zerolog.Logger
}

// Option configures a Builder at construction time.
type Option func(*config)

// WithForbidden supplies the forbidden triple set F. A non-empty F
// switches the builder from the plain BUILD recursion to the MTT
// recursion, whose auxiliary partition also avoids displaying any triple
// of F.
func WithForbidden(f []triples.Triple) Option {
	return func(c *config) { c.forbidden = f }
}

// WithAllowInconsistency controls what happens when the auxiliary graph
// yields no natural split: if allowed (the default), a partitioning
// strategy forces a split; otherwise the build fails with ErrNoTree.
func WithAllowInconsistency(allow bool) Option {
	return func(c *config) { c.allowInconsistency = allow }
}

// WithMethod selects the partitioning strategy used to force splits.
func WithMethod(m partitioning.Method) Option {
	return func(c *config) { c.method = m }
}

// WithObjective supplies the objective function scoring candidate
// partitions for the objective-driven strategies, and whether lower
// values are better.
func WithObjective(obj partitioning.ObjectiveFunc, minimize bool) Option {
	return func(c *config) {
		c.objective = obj
		c.minimize = minimize
	}
}

// WithBinarize selects the binarization mode applied to splits with more
// than two parts.
func WithBinarize(m BinarizeMode) Option {
	return func(c *config) { c.binarize = m }
}

// WithRepeats sets the number of independent repeats for the randomized
// strategies.
func WithRepeats(n int) Option {
	return func(c *config) { c.repeats = n }
}

// WithSeed seeds the pseudo-random source used for shuffles and
// tie-breaks. Every Build call derives a fresh source from the seed, so
// repeated builds of the same Builder are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightedMinCut weights auxiliary-graph edges by the number (or
// supplied weights) of triples inducing them, so that the minimum cut
// severs as few triples as possible.
func WithWeightedMinCut() Option {
	return func(c *config) { c.weightedMinCut = true }
}

// WithTripleWeights supplies per-triple weights for the weighted
// auxiliary graph; implies WithWeightedMinCut.
func WithTripleWeights(w triples.Weights) Option {
	return func(c *config) {
		c.weightedMinCut = true
		c.tripleWeights = w
	}
}

// WithMinCommunities sets the community floor for the hierarchical
// strategies.
func WithMinCommunities(n int) Option {
	return func(c *config) { c.minCommunities = n }
}

// WithLogger attaches a logger; per-call partitioning events are logged
// at debug level. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// defaultConfig returns the configuration used when no options are given:
// plain BUILD, inconsistency allowed, forced splits by exact minimum cut,
// no binarization, DefaultRepeats repeats and a fixed seed.
func defaultConfig() config {
	return config{
		allowInconsistency: true,
		method:             partitioning.MethodMinCut,
		binarize:           BinarizeNone,
		minimize:           true,
		repeats:            DefaultRepeats,
		seed:               partitioning.DefaultSeed,
		minCommunities:     2,
		logger:             zerolog.Nop(),
	}
}

// newRand derives a fresh pseudo-random source for one Build call.
func (c *config) newRand() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}
