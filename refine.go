package qotree

// Refine splits cells whose predicate, evaluated at the cell's physical
// center, exceeds the cell's current level. cells selects the candidate
// set; nil means every live cell. If recursive, newly produced children
// are re-examined against predicate until no candidate needs a further
// split. Returns every index created by a split, across all recursion
// depths.
//
// Terminates because level is bounded by Tree.Levels.
func (t *Tree) Refine(predicate func(center []float64) int, recursive bool, cells []uint64) ([]uint64, error) {
	var candidates []uint64
	if cells == nil {
		candidates = append([]uint64(nil), t.SortedIndices()...)
	} else {
		candidates = append([]uint64(nil), cells...)
	}

	var produced []uint64
	for _, idx := range candidates {
		if !t.Contains(idx) {
			continue
		}
		p := t.pointer(idx)
		if predicate(t.center(p)) <= p.Level {
			continue
		}
		children, err := t.RefineCell(idx)
		if err != nil {
			return nil, err
		}
		produced = append(produced, children...)
	}

	if !recursive || len(produced) == 0 {
		return produced, nil
	}
	deeper, err := t.Refine(predicate, recursive, produced)
	if err != nil {
		return nil, err
	}
	return append(produced, deeper...), nil
}
