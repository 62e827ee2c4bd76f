package sparse

// Add appends a (row, col, val) triplet. It does not check for or merge
// duplicate (row, col) pairs; callers that need accumulation (as the
// divergence assembler does for hanging faces) get it naturally because
// every consumer (At, ToDense, RowSums) sums over matching entries.
//
// Complexity: O(1) amortized.
func (m *Matrix) Add(row, col int, val float64) error {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return ErrIndexOutOfRange
	}
	m.Entries = append(m.Entries, Entry{Row: row, Col: col, Val: val})
	return nil
}

// NNZ returns the number of stored entries (not the number of distinct
// nonzero positions, since duplicates are not pre-merged).
//
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.Entries)
}

// At returns the sum of all entries stored at (row, col).
//
// Complexity: O(NNZ).
func (m *Matrix) At(row, col int) float64 {
	var sum float64
	for _, e := range m.Entries {
		if e.Row == row && e.Col == col {
			sum += e.Val
		}
	}
	return sum
}

// RowSums returns, for each row, the sum of all entries in that row.
//
// Complexity: O(NNZ + Rows).
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, m.Rows)
	for _, e := range m.Entries {
		sums[e.Row] += e.Val
	}
	return sums
}

// ToDense materializes the matrix as a row-major dense slice. Intended for
// tests and small matrices; production code should stay on the sparse form.
//
// Complexity: O(Rows*Cols + NNZ).
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.Rows)
	for i := range dense {
		dense[i] = make([]float64, m.Cols)
	}
	for _, e := range m.Entries {
		dense[e.Row][e.Col] += e.Val
	}
	return dense
}
