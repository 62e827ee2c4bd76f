// Package sparse implements a minimal COO (coordinate-list) sparse matrix,
// used by qotree for the face-divergence operator and the cell/face/edge
// permutation matrices.
//
// Entries are accumulated with Add and are not required to be unique or
// sorted; repeated (row, col) pairs sum under every consumer (At, ToDense,
// RowSums, MulVec), which is what the divergence assembler relies on at
// hanging faces.
// There is no dedicated CSR/CSC compaction step: the matrix is built once
// per numbering pass and consumed (ToDense, RowSums, Scale) rather than
// mutated incrementally at scale, so triplet storage is sufficient and
// keeps the package free of a BLAS-shaped API it doesn't need.
package sparse
