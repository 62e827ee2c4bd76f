package sparse

// Scale returns a new Matrix equal to diag(rowScale) * m * diag(colScale):
// every entry (i, j, v) becomes (i, j, v*rowScale[i]*colScale[j]). Passing
// nil for either scale treats it as all-ones. This is how qotree builds
// faceDiv = diag(1/vol) * rawIncidence * diag(area) in a single pass,
// without materializing the diagonal matrices themselves.
//
// Complexity: O(NNZ).
func (m *Matrix) Scale(rowScale, colScale []float64) (*Matrix, error) {
	if rowScale != nil && len(rowScale) != m.Rows {
		return nil, ErrDimensionMismatch
	}
	if colScale != nil && len(colScale) != m.Cols {
		return nil, ErrDimensionMismatch
	}

	out := New(m.Rows, m.Cols)
	out.Entries = make([]Entry, len(m.Entries))
	for i, e := range m.Entries {
		v := e.Val
		if rowScale != nil {
			v *= rowScale[e.Row]
		}
		if colScale != nil {
			v *= colScale[e.Col]
		}
		out.Entries[i] = Entry{Row: e.Row, Col: e.Col, Val: v}
	}
	return out, nil
}

// Identity returns the n x n identity matrix.
//
// Complexity: O(n).
func Identity(n int) *Matrix {
	m := New(n, n)
	m.Entries = make([]Entry, n)
	for i := 0; i < n; i++ {
		m.Entries[i] = Entry{Row: i, Col: i, Val: 1}
	}
	return m
}

// Permutation returns the len(perm) x len(perm) 0/1 matrix whose row k has
// its single 1 at column perm[k]-offset, i.e. the identity matrix with its
// rows reordered by perm. offset lets perm hold absolute indices into a
// larger concatenated numbering (as SortGrid produces for the Y/Z blocks
// of the face permutation).
//
// Complexity: O(n).
func Permutation(perm []int, offset int) (*Matrix, error) {
	n := len(perm)
	m := New(n, n)
	m.Entries = make([]Entry, n)
	for row, p := range perm {
		col := p - offset
		if col < 0 || col >= n {
			return nil, ErrIndexOutOfRange
		}
		m.Entries[row] = Entry{Row: row, Col: col, Val: 1}
	}
	return m, nil
}

// Transpose returns a new Matrix with rows and columns swapped.
//
// Complexity: O(NNZ).
func (m *Matrix) Transpose() *Matrix {
	out := New(m.Cols, m.Rows)
	out.Entries = make([]Entry, len(m.Entries))
	for i, e := range m.Entries {
		out.Entries[i] = Entry{Row: e.Col, Col: e.Row, Val: e.Val}
	}
	return out
}

// MulVec returns m * v.
//
// Complexity: O(NNZ).
func (m *Matrix) MulVec(v []float64) ([]float64, error) {
	if len(v) != m.Cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.Rows)
	for _, e := range m.Entries {
		out[e.Row] += e.Val * v[e.Col]
	}
	return out, nil
}
