package qotree_test

import (
	"fmt"

	"github.com/adaptive-mesh/qotree"
)

// ExampleNewTree builds a uniform 2-D mesh, refines it once, and reports
// the resulting cell and face counts.
func ExampleNewTree() {
	tr, err := qotree.NewTree([]qotree.HSpec{qotree.Uniform(4), qotree.Uniform(4)}, 2)
	if err != nil {
		panic(err)
	}

	if _, err := tr.Refine(func(center []float64) int { return 1 }, true, nil); err != nil {
		panic(err)
	}

	nF, err := tr.NF()
	if err != nil {
		panic(err)
	}

	fmt.Println(tr.NC(), nF)
	// Output: 4 12
}

// ExampleTree_Refine splits every cell whose predicate value exceeds its
// level, without recursing into the new children, and reports how many
// cells the split produced.
func ExampleTree_Refine() {
	tr, err := qotree.NewTree([]qotree.HSpec{qotree.Uniform(2), qotree.Uniform(2)}, 1)
	if err != nil {
		panic(err)
	}

	children, err := tr.Refine(func(center []float64) int { return 1 }, false, nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(children), tr.NC())
	// Output: 4 4
}

// ExampleTree_FaceDiv builds the sparse divergence operator for a small
// uniform mesh and reports its shape.
func ExampleTree_FaceDiv() {
	tr, err := qotree.NewTree([]qotree.HSpec{qotree.Uniform(2), qotree.Uniform(2)}, 1)
	if err != nil {
		panic(err)
	}
	if _, err := tr.Refine(func(center []float64) int { return 1 }, true, nil); err != nil {
		panic(err)
	}

	fd, err := tr.FaceDiv()
	if err != nil {
		panic(err)
	}

	fmt.Println(fd.Rows, fd.Cols)
	// Output: 4 12
}
