package qotree

import "errors"

// Sentinel errors for Tree construction and mutation.
var (
	// ErrInvalidShape indicates an h[k] entry has the wrong length, a
	// non-positive width, or doesn't resolve to 2^L cells.
	ErrInvalidShape = errors.New("qotree: invalid spacing shape")

	// ErrInvalidDimension indicates len(h) is not 2 or 3.
	ErrInvalidDimension = errors.New("qotree: dimension must be 2 or 3")

	// ErrInvalidPointer indicates a coordinate isn't aligned to the cell
	// width at its level, lies outside the domain, or level > L.
	ErrInvalidPointer = errors.New("qotree: invalid cell pointer")

	// ErrNotLive indicates an operation referenced a cell that is not a
	// live leaf of the tree.
	ErrNotLive = errors.New("qotree: cell is not live")

	// ErrMaxLevel indicates an attempt to refine a cell already at the
	// finest level L.
	ErrMaxLevel = errors.New("qotree: cell is already at the finest level")

	// ErrNotImplemented indicates a query this package does not implement:
	// the node count (NN), NEz, and in 3-D the edge counts, Edge and
	// PermuteE.
	ErrNotImplemented = errors.New("qotree: not implemented")

	// ErrUnbalanced is returned by CheckBalance when two face-sharing
	// cells differ by more than one refinement level.
	ErrUnbalanced = errors.New("qotree: mesh violates 2:1 balance")
)
