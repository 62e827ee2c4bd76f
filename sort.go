package qotree

import (
	"sort"

	"github.com/adaptive-mesh/qotree/sparse"
	"gonum.org/v1/gonum/floats/scalar"
)

// sortEps is the tolerance used to treat coordinates as tied on every axis
// except the innermost, which breaks ties by raw difference.
const sortEps = 1e-7

// SortGrid returns a permutation of [offset, offset+len(points)) that sorts
// points lexicographically by last coordinate, then second-to-last, ...,
// down to the first, which breaks remaining ties by raw difference instead
// of the epsilon comparison used on every coarser axis.
//
// Complexity: O(N log N).
func SortGrid(points [][]float64, offset int) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	dim := 0
	if len(points) > 0 {
		dim = len(points[0])
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		for axis := dim - 1; axis >= 0; axis-- {
			x, y := pa[axis], pb[axis]
			if axis == 0 {
				if x != y {
					return x < y
				}
				continue
			}
			if !scalar.EqualWithinAbs(x, y, sortEps) {
				return x < y
			}
		}
		return false
	})
	perm := make([]int, len(points))
	for k, origIdx := range order {
		perm[k] = offset + origIdx
	}
	return perm
}

// PermuteCC returns the sparse permutation matrix that sorts gridCC.
func (t *Tree) PermuteCC() (*sparse.Matrix, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	perm := SortGrid(t.gridCC, 0)
	return sparse.Permutation(perm, 0)
}

// PermuteF returns the sparse permutation matrix that sorts the combined
// (gridFx, gridFy[, gridFz]) face grid, each axis block sorted
// independently and concatenated at its existing global face offset.
func (t *Tree) PermuteF() (*sparse.Matrix, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	perm := make([]int, 0, t.nFx+t.nFy+t.nFz)
	perm = append(perm, SortGrid(t.gridFx, 0)...)
	perm = append(perm, SortGrid(t.gridFy, t.nFx)...)
	if t.dim == 3 {
		perm = append(perm, SortGrid(t.gridFz, t.nFx+t.nFy)...)
	}
	return sparse.Permutation(perm, 0)
}

// PermuteE returns the sparse permutation matrix for the edge grid. In 2-D,
// an edge is the same geometric object as a face but the Ex/Ey tables swap
// axes relative to Fx/Fy (see Tree.Edge), so the edge permutation sorts
// gridFy first at offset 0 and gridFx second at offset nFy, the mirror of
// PermuteF's X-then-Y layout, not an alias of it. In 3-D the edge grid and
// its permutation are not implemented.
func (t *Tree) PermuteE() (*sparse.Matrix, error) {
	if t.dim == 3 {
		return nil, ErrNotImplemented
	}
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	perm := make([]int, 0, t.nFx+t.nFy)
	perm = append(perm, SortGrid(t.gridFy, 0)...)
	perm = append(perm, SortGrid(t.gridFx, t.nFy)...)
	return sparse.Permutation(perm, 0)
}
