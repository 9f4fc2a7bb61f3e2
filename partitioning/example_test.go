package partitioning_test

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/david-schaller/bmg-edit/partitioning"
	"github.com/david-schaller/bmg-edit/triples"
)

// ExampleMinCut splits two triangles joined by a single bridge edge.
func ExampleMinCut() {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for l := triples.Leaf(1); l <= 6; l++ {
		g.AddNode(l)
	}
	for _, e := range [][2]triples.Leaf{
		{1, 2}, {1, 3}, {2, 3},
		{4, 5}, {4, 6}, {5, 6},
		{3, 4},
	} {
		g.SetWeightedEdge(simple.WeightedEdge{F: e[0], T: e[1], W: 1})
	}

	weight, parts, err := partitioning.MinCut(g)
	if err != nil {
		fmt.Println("mincut:", err)
		return
	}
	if parts[0][0] > parts[1][0] {
		parts[0], parts[1] = parts[1], parts[0]
	}

	fmt.Println(weight)
	fmt.Println(parts[0])
	fmt.Println(parts[1])
	// Output:
	// 1
	// [1 2 3]
	// [4 5 6]
}
