package partition

import (
	"errors"
	"sort"

	"github.com/david-schaller/bmg-edit/triples"
)

// ErrUnknownLeaf indicates an operation referenced a leaf that is not part
// of the partition.
var ErrUnknownLeaf = errors.New("partition: leaf not in partition")

// Partition is a disjoint-set (union-find) structure over a fixed leaf
// universe. Blocks are merged with union by size and queried with path
// compression, so Find and Same run in near-constant amortized time.
//
// Member slices are maintained per root, which makes Merge able to hand
// back the smaller of the two merged blocks without an extra scan.
type Partition struct {
	parent  map[triples.Leaf]triples.Leaf
	size    map[triples.Leaf]int
	members map[triples.Leaf][]triples.Leaf // root -> block members
	blocks  int
}

// NewFromBlocks builds a Partition whose initial blocks are exactly the
// given leaf sets. The blocks must be pairwise disjoint; leaves occurring
// in several blocks silently collapse into one.
func NewFromBlocks(blocks [][]triples.Leaf) *Partition {
	p := &Partition{
		parent:  make(map[triples.Leaf]triples.Leaf),
		size:    make(map[triples.Leaf]int),
		members: make(map[triples.Leaf][]triples.Leaf),
	}

	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		root := block[0]
		for _, l := range block {
			if _, seen := p.parent[l]; seen {
				continue
			}
			p.parent[l] = root
			p.members[root] = append(p.members[root], l)
		}
		p.size[root] = len(p.members[root])
		p.blocks++
	}

	return p
}

// NewSingletons builds a Partition in which every leaf forms its own block.
func NewSingletons(leaves []triples.Leaf) *Partition {
	blocks := make([][]triples.Leaf, 0, len(leaves))
	for _, l := range leaves {
		blocks = append(blocks, []triples.Leaf{l})
	}

	return NewFromBlocks(blocks)
}

// Len reports the current number of blocks.
func (p *Partition) Len() int { return p.blocks }

// Find returns the representative leaf of the block containing l.
// The second return value is false if l is not part of the partition.
func (p *Partition) Find(l triples.Leaf) (triples.Leaf, bool) {
	root, ok := p.parent[l]
	if !ok {
		return 0, false
	}

	// Walk up to the root, compressing the path along the way.
	for p.parent[root] != root {
		p.parent[root] = p.parent[p.parent[root]]
		root = p.parent[root]
	}
	p.parent[l] = root

	return root, true
}

// Same reports whether x and y currently lie in the same block.
func (p *Partition) Same(x, y triples.Leaf) bool {
	rx, okx := p.Find(x)
	ry, oky := p.Find(y)

	return okx && oky && rx == ry
}

// SeparatedXYZ reports whether the triple xy|z is separated by the current
// blocks: x and y lie in one block and z in a different one. A forbidden
// triple in this configuration is violated, because any tree refining the
// partition necessarily displays it.
func (p *Partition) SeparatedXYZ(x, y, z triples.Leaf) bool {
	return p.Same(x, y) && !p.Same(x, z)
}

// Merge unions the blocks containing x and y and returns the members of
// the smaller of the two (the block that changed root). If x and y already
// share a block, Merge returns nil. The returned slice is owned by the
// Partition and must not be mutated.
//
// The smaller-side return value lets callers bound incremental rework:
// a leaf only appears in the returned slice when it moves to a block at
// least twice its previous size, so it moves O(log n) times in total.
func (p *Partition) Merge(x, y triples.Leaf) []triples.Leaf {
	rx, okx := p.Find(x)
	ry, oky := p.Find(y)
	if !okx || !oky || rx == ry {
		return nil
	}

	// Union by size: attach the smaller root below the larger one.
	if p.size[rx] < p.size[ry] {
		rx, ry = ry, rx
	}
	smaller := p.members[ry]

	p.parent[ry] = rx
	p.size[rx] += p.size[ry]
	p.members[rx] = append(p.members[rx], smaller...)
	delete(p.size, ry)
	delete(p.members, ry)
	p.blocks--

	return smaller
}

// Blocks returns the current blocks as freshly allocated, sorted leaf
// slices, ordered by their smallest member. The result never aliases the
// internal state.
func (p *Partition) Blocks() [][]triples.Leaf {
	out := make([][]triples.Leaf, 0, p.blocks)
	for _, block := range p.members {
		cp := make([]triples.Leaf, len(block))
		copy(cp, block)
		out = append(out, triples.SortLeaves(cp))
	}
	// Order blocks by smallest member for deterministic iteration.
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
