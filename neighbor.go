package qotree

// anchorOffsets returns the fixed per-axis child-offset anchors used to
// enumerate the 2^(dim-1) finer cells sharing a face, in the order
// downstream numbering relies on. hw is half the coarse cell's width at
// its level, i.e. the finer cell width.
func anchorOffsets(dim, axis int, hw uint64) [][]int64 {
	z := int64(0)
	h := int64(hw)
	switch dim {
	case 2:
		switch axis {
		case 0: // X
			return [][]int64{{z, z}, {z, h}}
		case 1: // Y
			return [][]int64{{z, z}, {h, z}}
		}
	case 3:
		switch axis {
		case 0: // X
			return [][]int64{{z, z, z}, {z, h, z}, {z, z, h}, {z, h, h}}
		case 1: // Y
			return [][]int64{{z, z, z}, {h, z, z}, {z, z, h}, {h, z, h}}
		case 2: // Z
			return [][]int64{{z, z, z}, {h, z, z}, {z, h, z}, {h, h, z}}
		}
	}
	panic("qotree: unreachable axis/dim combination")
}

// parentPointer returns the parent of p (p.Level must be > 0).
func (t *Tree) parentPointer(p Pointer) Pointer {
	mod := t.cellWidth(p.Level - 1)
	coords := make([]uint64, t.dim)
	for k, c := range p.Coords {
		coords[k] = c - c%mod
	}
	return Pointer{Coords: coords, Level: p.Level - 1}
}

// inDomain reports whether every signed coordinate lies in [0, 2^levels).
func (t *Tree) inDomain(coords []int64) bool {
	domain := int64(1) << uint(t.levels)
	for _, c := range coords {
		if c < 0 || c >= domain {
			return false
		}
	}
	return true
}

func toSigned(u []uint64) []int64 {
	s := make([]int64, len(u))
	for i, x := range u {
		s[i] = int64(x)
	}
	return s
}

func toUnsigned(s []int64) []uint64 {
	u := make([]uint64, len(s))
	for i, x := range s {
		u[i] = uint64(x)
	}
	return u
}

// NextCell finds the neighbor of cell p along axis in the given sign
// (positive=true is +axis, false is -axis). It assumes p names a live cell
// and that the mesh is 2:1 balanced (see Tree.CheckBalance); behavior under
// an unbalanced mesh is undefined beyond what CheckBalance can detect.
//
// Complexity: O(dim) typically; O(levels*dim) in the worst case (walking
// up to the root looking for a coarser neighbor).
func (t *Tree) NextCell(p Pointer, axis int, positive bool) (Neighbor, error) {
	if axis < 0 || axis >= t.dim {
		return Neighbor{}, ErrInvalidPointer
	}

	w := int64(t.cellWidth(p.Level))
	step := w
	if !positive {
		step = -w
	}

	same := toSigned(p.Coords)
	same[axis] += step
	if !t.inDomain(same) {
		return Neighbor{Kind: NeighborNone}, nil
	}

	sameIdx, err := t.index(Pointer{Coords: toUnsigned(same), Level: p.Level})
	if err != nil {
		return Neighbor{}, err
	}
	if t.Contains(sameIdx) {
		return Neighbor{Kind: NeighborSame, Index: sameIdx}, nil
	}

	if p.Level+1 <= t.levels {
		hw := t.cellWidth(p.Level + 1)
		test := append([]int64(nil), same...)
		if !positive {
			test[axis] -= step / 2
		}
		testIdx, err := t.index(Pointer{Coords: toUnsigned(test), Level: p.Level + 1})
		if err != nil {
			return Neighbor{}, err
		}
		if t.Contains(testIdx) {
			offsets := anchorOffsets(t.dim, axis, hw)
			indices := make([]uint64, 0, len(offsets))
			for _, off := range offsets {
				coords := toSigned(p.Coords)
				if positive {
					coords[axis] += w
				} else {
					coords[axis] -= int64(hw)
				}
				for k := 0; k < t.dim; k++ {
					if k != axis {
						coords[k] += off[k]
					}
				}
				idx, err := t.index(Pointer{Coords: toUnsigned(coords), Level: p.Level + 1})
				if err != nil {
					return Neighbor{}, err
				}
				indices = append(indices, idx)
			}
			return Neighbor{Kind: NeighborFiner, Indices: indices}, nil
		}
	}

	// Neither same-level nor finer: the neighbor must be coarser.
	if p.Level == 0 {
		// Root has no parent; a coarser neighbor cannot exist once the
		// same-level candidate failed at level 0, so this is domain edge.
		return Neighbor{Kind: NeighborNone}, nil
	}
	up, err := t.NextCell(t.parentPointer(p), axis, positive)
	if err != nil {
		return Neighbor{}, err
	}
	if up.Kind == NeighborSame {
		up.Kind = NeighborCoarser
	}
	return up, nil
}

// CheckBalance verifies the 2:1 balance assumption NextCell and the
// numbering pass depend on: no live cell has a coarser face neighbor more
// than one level up, and every finer neighbor set NextCell reports consists
// of live cells. Returns ErrUnbalanced on the first violation found.
//
// Complexity: O(nC * dim).
func (t *Tree) CheckBalance() error {
	for idx := range t.cells {
		p := t.pointer(idx)
		for axis := 0; axis < t.dim; axis++ {
			for _, positive := range []bool{true, false} {
				n, err := t.NextCell(p, axis, positive)
				if err != nil {
					return err
				}
				switch n.Kind {
				case NeighborCoarser:
					if t.pointer(n.Index).Level < p.Level-1 {
						return ErrUnbalanced
					}
				case NeighborFiner:
					for _, childIdx := range n.Indices {
						if !t.Contains(childIdx) {
							return ErrUnbalanced
						}
					}
				}
			}
		}
	}
	return nil
}
