package build

import (
	"github.com/david-schaller/bmg-edit/partition"
	"github.com/david-schaller/bmg-edit/tree"
)

// assemble attaches the subtrees built for the parts of a split under a
// fresh inner node, binarizing multi-way splits when requested.
func (rs *runState) assemble(children []*tree.Node) (*tree.Node, error) {
	if len(children) <= 2 || rs.cfg.binarize == BinarizeNone {
		return tree.NewInner(children...), nil
	}

	switch rs.cfg.binarize {
	case BinarizeCaterpillar:
		return caterpillar(children), nil
	case BinarizeBalanced:
		return balanced(children), nil
	default:
		// Unreachable: the mode was validated by New.
		return nil, ErrUnknownBinarization
	}
}

// caterpillar chains the subtrees into a linear cascade of binary splits:
// the first subtree pairs with the chain of all following ones.
func caterpillar(children []*tree.Node) *tree.Node {
	k := len(children)
	node := tree.NewInner(children[k-2], children[k-1])
	for i := k - 3; i >= 0; i-- {
		node = tree.NewInner(children[i], node)
	}

	return node
}

// balanced recursively splits the subtrees into two groups of nearly
// equal total leaf count using largest-differencing number partitioning.
func balanced(children []*tree.Node) *tree.Node {
	if len(children) == 1 {
		return children[0]
	}
	if len(children) == 2 {
		return tree.NewInner(children[0], children[1])
	}

	weights := make([]float64, len(children))
	for i, c := range children {
		weights[i] = float64(len(c.Leaves()))
	}
	groups := partition.KarmarkarKarp(weights)

	sides := make([]*tree.Node, 0, 2)
	for _, group := range groups {
		picked := make([]*tree.Node, 0, len(group))
		for _, idx := range group {
			picked = append(picked, children[idx])
		}
		sides = append(sides, balanced(picked))
	}

	return tree.NewInner(sides[0], sides[1])
}
