package qotree_test

import (
	"testing"

	"github.com/adaptive-mesh/qotree"
)

var benchSinkMatrixRows int

// BenchmarkFaceDiv measures the cost of a full numbering pass plus faceDiv
// assembly on a moderately refined 2-D mesh.
func BenchmarkFaceDiv(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr, err := qotree.NewTree([]qotree.HSpec{qotree.Uniform(8), qotree.Uniform(8)}, 3)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := tr.Refine(always1, true, nil); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		fd, err := tr.FaceDiv()
		if err != nil {
			b.Fatal(err)
		}
		benchSinkMatrixRows = fd.Rows
	}
}

// BenchmarkRefineCell measures a single refine_cell split in isolation.
func BenchmarkRefineCell(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr, err := qotree.NewTree([]qotree.HSpec{qotree.Uniform(4), qotree.Uniform(4)}, 2)
		if err != nil {
			b.Fatal(err)
		}
		var root uint64
		for _, idx := range tr.SortedIndices() {
			root = idx
			break
		}
		b.StartTimer()
		if _, err := tr.RefineCell(root); err != nil {
			b.Fatal(err)
		}
	}
}
