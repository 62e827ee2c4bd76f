package sparse

import "errors"

// Sentinel errors for sparse matrix construction and access.
var (
	// ErrDimensionMismatch indicates two matrices or a matrix and a vector
	// have incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrIndexOutOfRange indicates a row or column index falls outside
	// the matrix's declared shape.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
)

// Entry is a single (row, col, value) triplet.
type Entry struct {
	Row, Col int
	Val      float64
}

// Matrix is a sparse matrix stored as an unordered list of triplets.
// Rows and Cols declare the logical shape; Entries may contain duplicate
// (Row, Col) pairs, which accumulate under At and ToDense.
type Matrix struct {
	Rows, Cols int
	Entries    []Entry
}

// Option configures a Matrix at construction time.
type Option func(*Matrix)

// WithCapacityHint preallocates the Entries slice to n, avoiding repeated
// growth when the caller knows roughly how many triplets it will Add (the
// divergence assembler knows this from the cell/face counts before it
// builds the raw incidence matrix).
func WithCapacityHint(n int) Option {
	return func(m *Matrix) {
		if n > 0 {
			m.Entries = make([]Entry, 0, n)
		}
	}
}

// New returns an empty Matrix of the given shape.
//
// Complexity: O(1).
func New(rows, cols int, opts ...Option) *Matrix {
	m := &Matrix{Rows: rows, Cols: cols}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
