package qotree

import "github.com/adaptive-mesh/qotree/sparse"

// faceDirSign holds the incidence sign of each direction, in the fixed order
// the assembly visits: (-x,+x,-y,+y[,-z,+z]), matching c2f's slot order exactly.
var faceDirSign = [...]float64{-1, 1, -1, 1, -1, 1}

// buildFaceDiv builds (or returns the cached) discrete divergence operator,
// mapping face fluxes to cell-centered divergences: faceDiv = diag(1/vol) *
// rawIncidence * diag(area).
//
// Complexity: O(nC * dim) to build the raw incidence, plus O(nnz) to scale.
func (t *Tree) buildFaceDiv() (*sparse.Matrix, error) {
	if err := t.ensureNumbered(); err != nil {
		return nil, err
	}
	if t.faceDiv != nil {
		return t.faceDiv, nil
	}

	nC := len(t.SortedIndices())
	nF := t.nFx + t.nFy + t.nFz
	axisOffset := [...]int{0, t.nFx, t.nFx + t.nFy}

	// Every row has at least 2*dim entries (one per direction, under 2:1
	// balance); each direction of a row whose neighbors there are finer adds
	// 2^(dim-1)-1 more.
	raw := sparse.New(nC, nF, sparse.WithCapacityHint(nC*t.dirCount()))
	for row, idx := range t.SortedIndices() {
		slots := t.c2f[idx]
		for dir := 0; dir < t.dirCount(); dir++ {
			offset := axisOffset[dir/2]
			for _, f := range slots[dir] {
				if err := raw.Add(row, offset+f, faceDirSign[dir]); err != nil {
					return nil, err
				}
			}
		}
	}

	invVol := make([]float64, nC)
	for i, v := range t.vol {
		invVol[i] = 1 / v
	}

	scaled, err := raw.Scale(invVol, t.area)
	if err != nil {
		return nil, err
	}
	t.faceDiv = scaled
	return scaled, nil
}
