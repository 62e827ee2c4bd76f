package qotree

import "sort"

// index encodes a pointer into its packed Morton index. It assumes p has
// already been validated (coordinate range, level range); callers that
// accept external input should call validatePointer first.
func (t *Tree) index(p Pointer) (uint64, error) {
	coords := make([]uint64, t.dim)
	copy(coords, p.Coords)
	return t.codec.Encode(coords, uint64(p.Level))
}

// pointer decodes a packed Morton index back into a Pointer.
func (t *Tree) pointer(index uint64) Pointer {
	coords, level := t.codec.Decode(index)
	return Pointer{Coords: coords, Level: int(level)}
}

// cellWidth returns the width, in finest-level coordinate units, of a cell
// at the given level.
func (t *Tree) cellWidth(level int) uint64 {
	return uint64(1) << uint(t.levels-level)
}

// validatePointer checks coordinate alignment, domain bounds and level
// range for a pointer, independent of liveness.
func (t *Tree) validatePointer(p Pointer) error {
	if len(p.Coords) != t.dim {
		return ErrInvalidPointer
	}
	if p.Level < 0 || p.Level > t.levels {
		return ErrInvalidPointer
	}
	w := t.cellWidth(p.Level)
	domain := uint64(1) << uint(t.levels)
	for _, c := range p.Coords {
		if c >= domain || c%w != 0 {
			return ErrInvalidPointer
		}
	}
	return nil
}

// Contains reports whether index names a live cell.
//
// Complexity: O(1).
func (t *Tree) Contains(index uint64) bool {
	_, ok := t.cells[index]
	return ok
}

// ContainsPointer reports whether p names a live cell.
//
// Complexity: O(dim).
func (t *Tree) ContainsPointer(p Pointer) bool {
	if err := t.validatePointer(p); err != nil {
		return false
	}
	idx, err := t.index(p)
	if err != nil {
		return false
	}
	return t.Contains(idx)
}

// NC returns the number of live cells.
//
// Complexity: O(1).
func (t *Tree) NC() int {
	return len(t.cells)
}

// SortedIndices returns the live cell indices in ascending order (Morton
// major, level minor, the order the numbering pass visits cells in).
//
// Complexity: O(nC log nC), cached until the next mutation.
func (t *Tree) SortedIndices() []uint64 {
	if t.sortedInds != nil {
		return t.sortedInds
	}
	inds := make([]uint64, 0, len(t.cells))
	for idx := range t.cells {
		inds = append(inds, idx)
	}
	sort.Slice(inds, func(i, j int) bool { return inds[i] < inds[j] })
	t.sortedInds = inds
	return inds
}

// markDirty invalidates every derived cache. Called by every mutation.
func (t *Tree) markDirty() {
	t.dirty = true
	t.sortedInds = nil
	t.gridCC = nil
	t.gridFx, t.gridFy, t.gridFz = nil, nil, nil
	t.area, t.vol = nil, nil
	t.c2f = nil
	t.hangingX, t.hangingY, t.hangingZ = nil, nil, nil
	t.nFx, t.nFy, t.nFz = 0, 0, 0
	t.faceDiv = nil
}

// RefineCell splits the live cell at index into its 2^dim children at the
// next level. The split is atomic: either every child is added and the
// parent removed, or (on error) the tree is left exactly as it was.
//
// Returns ErrNotLive if index does not name a live cell, ErrMaxLevel if the
// cell is already at the finest level.
//
// Complexity: O(2^dim).
func (t *Tree) RefineCell(index uint64) ([]uint64, error) {
	if !t.Contains(index) {
		return nil, ErrNotLive
	}
	p := t.pointer(index)
	if p.Level >= t.levels {
		return nil, ErrMaxLevel
	}

	half := t.cellWidth(p.Level + 1) // == cellWidth(p.Level)/2
	nOffsets := 1 << uint(t.dim)
	children := make([]uint64, 0, nOffsets)
	for mask := 0; mask < nOffsets; mask++ {
		coords := make([]uint64, t.dim)
		for axis := 0; axis < t.dim; axis++ {
			coords[axis] = p.Coords[axis]
			if mask&(1<<uint(axis)) != 0 {
				coords[axis] += half
			}
		}
		childIdx, err := t.index(Pointer{Coords: coords, Level: p.Level + 1})
		if err != nil {
			return nil, err
		}
		children = append(children, childIdx)
	}

	delete(t.cells, index)
	for _, c := range children {
		t.cells[c] = struct{}{}
	}
	t.markDirty()
	return children, nil
}

// RefineCellAt is RefineCell taking a Pointer instead of a packed index.
// Returns ErrInvalidPointer if p is malformed before any liveness check.
func (t *Tree) RefineCellAt(p Pointer) ([]uint64, error) {
	if err := t.validatePointer(p); err != nil {
		return nil, err
	}
	idx, err := t.index(p)
	if err != nil {
		return nil, err
	}
	return t.RefineCell(idx)
}
