package qotree

import (
	"github.com/adaptive-mesh/qotree/morton"
	"github.com/adaptive-mesh/qotree/sparse"
)

// Pointer addresses a cell by its minimum-corner coordinates (in
// finest-level units, one per axis) and its refinement level.
type Pointer struct {
	Coords []uint64
	Level  int
}

// HSpec describes the spacing along one axis, as accepted by NewTree: either
// n equal cells of width 1/n (Uniform) or an explicit array of cell widths
// (Array). A Tree resolves each HSpec into a []float64 of length 2^L during
// construction.
type HSpec struct {
	n     int
	array []float64
}

// Uniform returns an HSpec for n equal-width cells covering the unit
// interval (each of width 1/n).
func Uniform(n int) HSpec { return HSpec{n: n} }

// Array returns an HSpec for explicit, possibly non-uniform, cell widths.
// The slice is copied; widths must all be positive.
func Array(widths []float64) HSpec {
	cp := make([]float64, len(widths))
	copy(cp, widths)
	return HSpec{array: cp}
}

// resolve expands the HSpec into a length-2^levels slice of finest-level
// cell widths, or fails with ErrInvalidShape if the spec's cardinality
// doesn't match the tree's depth or any width is non-positive.
func (hs HSpec) resolve(levels int) ([]float64, error) {
	n := uint64(1) << uint(levels)

	if hs.array != nil {
		if uint64(len(hs.array)) != n {
			return nil, ErrInvalidShape
		}
		for _, w := range hs.array {
			if w <= 0 {
				return nil, ErrInvalidShape
			}
		}
		out := make([]float64, len(hs.array))
		copy(out, hs.array)
		return out, nil
	}

	if hs.n <= 0 || uint64(hs.n) != n {
		return nil, ErrInvalidShape
	}
	width := 1.0 / float64(hs.n)
	out := make([]float64, hs.n)
	for i := range out {
		out[i] = width
	}
	return out, nil
}

// NeighborKind tags the shape of a next-cell lookup's result.
type NeighborKind int

const (
	// NeighborNone means the candidate direction leaves the domain.
	NeighborNone NeighborKind = iota
	// NeighborSame means a single neighbor at the same level exists.
	NeighborSame
	// NeighborCoarser means a single neighbor at a strictly coarser level
	// exists (the face is hanging on this side).
	NeighborCoarser
	// NeighborFiner means 2^(dim-1) finer neighbors share the face.
	NeighborFiner
)

// Neighbor is the tagged-variant result of a next-cell lookup along one
// axis and sign. Exactly one of its fields is meaningful, selected by Kind:
// NeighborNone carries nothing, NeighborSame and NeighborCoarser carry
// Index, NeighborFiner carries Indices (in the fixed child-offset order
// the numbering pass relies on).
type Neighbor struct {
	Kind    NeighborKind
	Index   uint64
	Indices []uint64
}

// Tree is an adaptive quadtree (dim==2) or octree (dim==3) mesh over a
// tensor-product box. The zero value is not usable; construct with NewTree.
type Tree struct {
	h      [][]float64 // per-axis cell widths at the finest level, len 2^levels each
	dim    int
	levels int
	codec  morton.Codec

	cells map[uint64]struct{} // live cell indices
	dirty bool

	// derived caches, valid iff !dirty
	sortedInds []uint64
	gridCC     [][]float64
	gridFx     [][]float64
	gridFy     [][]float64
	gridFz     [][]float64
	area       []float64
	vol        []float64
	c2f        map[uint64][][]int // cell index -> per-direction face id lists
	hangingX   map[int]struct{}
	hangingY   map[int]struct{}
	hangingZ   map[int]struct{}
	nFx, nFy, nFz int
	faceDiv       *sparse.Matrix // cleared whenever dirty is set
}
