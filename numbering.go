package qotree

// dirCount returns the number of per-cell direction slots (2*dim), one
// per (-x,+x,-y,+y[,-z,+z]) entry.
func (t *Tree) dirCount() int { return 2 * t.dim }

// face records one allocated face: its geometric center, its area, and
// whether it sits on the fine side of a 2:1 interface.
type face struct {
	center  []float64
	area    float64
	hanging bool
}

// numberingState accumulates everything the numbering pass (C5) builds,
// one axis at a time, before being flattened into the Tree's dense caches.
type numberingState struct {
	faces  [][]face // per axis
	hangID [][]int  // per axis, ids of hanging faces
	c2f    map[uint64][][]int
}

// ensureNumbered runs the numbering pass if the tree is dirty, materializing
// gridF*, area, vol, c2f, hangingX/Y/Z and the face counts. It is the single
// entry point every lazily-derived query funnels through.
//
// Complexity: O(nC * dim) next-cell lookups, each O(levels*dim) worst case.
func (t *Tree) ensureNumbered() error {
	if !t.dirty && t.c2f != nil {
		return nil
	}

	st := &numberingState{
		faces:  make([][]face, t.dim),
		hangID: make([][]int, t.dim),
		c2f:    make(map[uint64][][]int, len(t.cells)),
	}

	sorted := t.SortedIndices()
	for _, idx := range sorted {
		st.c2f[idx] = make([][]int, t.dirCount())
	}

	for _, idx := range sorted {
		p := t.pointer(idx)
		for axis := 0; axis < t.dim; axis++ {
			negSlot := 2 * axis
			posSlot := 2*axis + 1

			negN, err := t.NextCell(p, axis, false)
			if err != nil {
				return err
			}
			if negN.Kind == NeighborNone {
				fid := st.allocate(axis, t.origin(p), t.widths(p), axis, false)
				st.c2f[idx][negSlot] = append(st.c2f[idx][negSlot], fid)
			}

			posN, err := t.NextCell(p, axis, true)
			if err != nil {
				return err
			}
			switch posN.Kind {
			case NeighborNone:
				fid := st.allocate(axis, t.origin(p), t.widths(p), axis, true)
				st.c2f[idx][posSlot] = append(st.c2f[idx][posSlot], fid)
			case NeighborSame:
				fid := st.allocate(axis, t.origin(p), t.widths(p), axis, true)
				st.c2f[idx][posSlot] = append(st.c2f[idx][posSlot], fid)
				st.c2f[posN.Index][2*axis] = append(st.c2f[posN.Index][2*axis], fid)
			case NeighborCoarser:
				fid := st.allocate(axis, t.origin(p), t.widths(p), axis, true)
				st.markHanging(axis, fid)
				st.c2f[idx][posSlot] = append(st.c2f[idx][posSlot], fid)
				st.c2f[posN.Index][2*axis] = append(st.c2f[posN.Index][2*axis], fid)
			case NeighborFiner:
				for _, childIdx := range posN.Indices {
					child := t.pointer(childIdx)
					fid := st.allocate(axis, t.origin(child), t.widths(child), axis, false)
					st.markHanging(axis, fid)
					st.c2f[childIdx][negSlot] = append(st.c2f[childIdx][negSlot], fid)
					st.c2f[idx][posSlot] = append(st.c2f[idx][posSlot], fid)
				}
			}
		}
	}

	t.materialize(st)
	t.dirty = false
	return nil
}

// allocate appends a new face to axis's list and returns its id. origin and
// widths belong to the cell whose face has exactly this extent: the visiting
// cell for boundary, same-level and coarser-neighbor faces (for a coarser
// neighbor that is the small cell), the finer child for finer-neighbor
// faces. positiveSide selects whether the face sits at origin+width or at
// origin along faceAxis, which fixes the face center's coordinate there.
func (st *numberingState) allocate(axis int, origin, widths []float64, faceAxis int, positiveSide bool) int {
	center := make([]float64, len(origin))
	for k := range center {
		center[k] = origin[k] + widths[k]/2
	}
	if positiveSide {
		center[faceAxis] = origin[faceAxis] + widths[faceAxis]
	} else {
		center[faceAxis] = origin[faceAxis]
	}
	area := 1.0
	for k, w := range widths {
		if k != faceAxis {
			area *= w
		}
	}
	id := len(st.faces[axis])
	st.faces[axis] = append(st.faces[axis], face{center: center, area: area})
	return id
}

func (st *numberingState) markHanging(axis, id int) {
	st.faces[axis][id].hanging = true
	st.hangID[axis] = append(st.hangID[axis], id)
}

// materialize flattens a completed numberingState into the Tree's dense
// lazy caches.
func (t *Tree) materialize(st *numberingState) {
	t.c2f = st.c2f

	t.nFx = len(st.faces[0])
	t.nFy = len(st.faces[1])
	if t.dim == 3 {
		t.nFz = len(st.faces[2])
	} else {
		t.nFz = 0
	}

	t.gridFx = gridOf(st.faces[0])
	t.gridFy = gridOf(st.faces[1])
	if t.dim == 3 {
		t.gridFz = gridOf(st.faces[2])
	} else {
		t.gridFz = nil
	}

	t.hangingX = toSet(st.hangID[0])
	t.hangingY = toSet(st.hangID[1])
	if t.dim == 3 {
		t.hangingZ = toSet(st.hangID[2])
	} else {
		t.hangingZ = nil
	}

	totalF := t.nFx + t.nFy + t.nFz
	t.area = make([]float64, 0, totalF)
	for _, axisFaces := range st.faces {
		for _, f := range axisFaces {
			t.area = append(t.area, f.area)
		}
	}

	sorted := t.SortedIndices()
	t.vol = make([]float64, len(sorted))
	t.gridCC = make([][]float64, len(sorted))
	for i, idx := range sorted {
		p := t.pointer(idx)
		t.vol[i] = t.volume(p)
		t.gridCC[i] = t.center(p)
	}
}

func gridOf(faces []face) [][]float64 {
	out := make([][]float64, len(faces))
	for i, f := range faces {
		out[i] = f.center
	}
	return out
}

func toSet(ids []int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
