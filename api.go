package qotree

import (
	"fmt"
	"math"

	"github.com/adaptive-mesh/qotree/morton"
	"github.com/adaptive-mesh/qotree/sparse"
)

// levelBits returns B = ceil(sqrt(levels)) + 1, the number of low bits
// reserved for the level field; chosen so that levels < 2^B.
func levelBits(levels int) int {
	return int(math.Ceil(math.Sqrt(float64(levels)))) + 1
}

// NewTree constructs a mesh over a tensor-product box with dim = len(h)
// axes (2 or 3) and max refinement level levels. Each HSpec resolves to a
// length-2^levels array of finest-level cell widths. The root cell (all
// coordinates zero, level 0) is the tree's sole live cell on return.
func NewTree(h []HSpec, levels int) (*Tree, error) {
	dim := len(h)
	if dim != 2 && dim != 3 {
		return nil, ErrInvalidDimension
	}
	if levels <= 0 {
		return nil, ErrInvalidShape
	}

	spacing := make([][]float64, dim)
	for k, hs := range h {
		resolved, err := hs.resolve(levels)
		if err != nil {
			return nil, fmt.Errorf("qotree: axis %d: %w", k, err)
		}
		spacing[k] = resolved
	}

	codec, err := morton.NewCodec(dim, levels, levelBits(levels))
	if err != nil {
		return nil, fmt.Errorf("qotree: %w", err)
	}

	t := &Tree{
		h:      spacing,
		dim:    dim,
		levels: levels,
		codec:  codec,
		cells:  make(map[uint64]struct{}),
		dirty:  true,
	}

	root, err := t.index(Pointer{Coords: make([]uint64, dim), Level: 0})
	if err != nil {
		return nil, err
	}
	t.cells[root] = struct{}{}
	return t, nil
}

// Dim returns 2 or 3.
func (t *Tree) Dim() int { return t.dim }

// Levels returns L, the finest refinement level.
func (t *Tree) Levels() int { return t.levels }

// NN returns the node count. Node enumeration is not implemented.
func (t *Tree) NN() (int, error) {
	return 0, ErrNotImplemented
}

// NF returns the total face count across all axes.
func (t *Tree) NF() (int, error) {
	if err := t.ensureNumbered(); err != nil {
		return 0, err
	}
	return t.nFx + t.nFy + t.nFz, nil
}

// NFx returns the face count along X.
func (t *Tree) NFx() (int, error) {
	if err := t.ensureNumbered(); err != nil {
		return 0, err
	}
	return t.nFx, nil
}

// NFy returns the face count along Y.
func (t *Tree) NFy() (int, error) {
	if err := t.ensureNumbered(); err != nil {
		return 0, err
	}
	return t.nFy, nil
}

// NFz returns the face count along Z, or 0 when Dim() < 3.
func (t *Tree) NFz() (int, error) {
	if t.dim < 3 {
		return 0, nil
	}
	if err := t.ensureNumbered(); err != nil {
		return 0, err
	}
	return t.nFz, nil
}

// NE returns the edge count. In 2-D this equals NF; in 3-D, edge
// enumeration is not implemented.
func (t *Tree) NE() (int, error) {
	if t.dim == 3 {
		return 0, ErrNotImplemented
	}
	return t.NF()
}

// NEx returns the X-edge count (2-D only). In 2-D an edge is a 1-D segment
// along an axis, the same object as a face perpendicular to the other
// axis, so the Ex/Ey tables swap axes relative to Fx/Fy: NEx mirrors NFy.
func (t *Tree) NEx() (int, error) {
	if t.dim == 3 {
		return 0, ErrNotImplemented
	}
	return t.NFy()
}

// NEy returns the Y-edge count (2-D only; mirrors NFx, see NEx).
func (t *Tree) NEy() (int, error) {
	if t.dim == 3 {
		return 0, ErrNotImplemented
	}
	return t.NFx()
}

// NEz is never defined: 2-D has no Z axis and 3-D edges aren't implemented.
func (t *Tree) NEz() (int, error) {
	return 0, ErrNotImplemented
}

// Edge returns the 2-D edge "area" (length) array, in Ex-then-Ey order:
// area[nFx:nFx+nFy] followed by area[0:nFx] (the same axis swap as NEx and
// NEy). 3-D edges are not implemented.
func (t *Tree) Edge() ([]float64, error) {
	if t.dim == 3 {
		return nil, ErrNotImplemented
	}
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(t.area))
	out = append(out, t.area[t.nFx:t.nFx+t.nFy]...)
	out = append(out, t.area[:t.nFx]...)
	return out, nil
}

// Vol returns the length-NC volume array, indexed by sorted-cell position.
func (t *Tree) Vol() ([]float64, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.vol, nil
}

// Area returns the length-NF area array, indexed by global face id.
func (t *Tree) Area() ([]float64, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.area, nil
}

// GridCC returns the (NC, dim) cell-center array, indexed by sorted-cell
// position.
func (t *Tree) GridCC() ([][]float64, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.gridCC, nil
}

// GridFx returns the (NFx, dim) X-face-center array.
func (t *Tree) GridFx() ([][]float64, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.gridFx, nil
}

// GridFy returns the (NFy, dim) Y-face-center array.
func (t *Tree) GridFy() ([][]float64, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.gridFy, nil
}

// GridFz returns the (NFz, dim) Z-face-center array, or nil when Dim() < 3.
func (t *Tree) GridFz() ([][]float64, error) {
	if t.dim < 3 {
		return nil, nil
	}
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	return t.gridFz, nil
}

// IsHanging reports whether the given face id on the given axis (0=X,
// 1=Y, 2=Z) is a hanging face.
func (t *Tree) IsHanging(axis, faceID int) (bool, error) {
	if err := t.ensureNumbered(); err != nil {
		return false, err
	}
	var set map[int]struct{}
	switch axis {
	case 0:
		set = t.hangingX
	case 1:
		set = t.hangingY
	case 2:
		set = t.hangingZ
	default:
		return false, ErrInvalidPointer
	}
	_, ok := set[faceID]
	return ok, nil
}

// FaceDiv returns the (NC, NF) sparse divergence operator.
func (t *Tree) FaceDiv() (*sparse.Matrix, error) {
	return t.buildFaceDiv()
}

// PointerOf decodes a live cell's index into its Pointer.
func (t *Tree) PointerOf(index uint64) (Pointer, error) {
	if !t.Contains(index) {
		return Pointer{}, ErrNotLive
	}
	return t.pointer(index), nil
}

// CenterOf returns the physical center of the cell named by p.
func (t *Tree) CenterOf(p Pointer) []float64 {
	return t.center(p)
}

// NextCellByIndex is NextCell taking a live cell index instead of a Pointer.
func (t *Tree) NextCellByIndex(index uint64, axis int, positive bool) (Neighbor, error) {
	p, err := t.PointerOf(index)
	if err != nil {
		return Neighbor{}, err
	}
	return t.NextCell(p, axis, positive)
}

// FaceIDsAt returns the negative- and positive-side face id lists for a
// live cell along axis, as recorded by the numbering pass. Ids are local
// to the axis: add the axis block's offset (0, NFx, NFx+NFy) to index the
// global Area array or the divergence's columns.
func (t *Tree) FaceIDsAt(index uint64, axis int) (neg, pos []int) {
	if err := t.ensureNumbered(); err != nil {
		return nil, nil
	}
	slots := t.c2f[index]
	return slots[2*axis], slots[2*axis+1]
}
