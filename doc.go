// Package qotree implements an adaptive quad/octree mesh for finite-volume
// discretization on an axis-aligned tensor-product box.
//
// A Tree starts as a single root cell covering the domain and refines by
// predicate (Refine) or by hand (RefineCell) into 2^dim children at a time.
// Cells are addressed by a packed Morton index (see the morton subpackage)
// rather than by pointer graph, which makes the live cell set a plain
// map[uint64]struct{} and every cell hashable, sortable, and independently
// reconstructible from its index.
//
// Face, area, volume and incidence bookkeeping runs lazily on
// first access to any derived quantity and is invalidated wholesale by any
// refinement; there is no incremental renumbering. The face-divergence operator and the
// cell/face/edge permutations are exposed as sparse matrices (package
// sparse) rather than dense arrays, since both scale with the number of
// faces rather than the domain's bounding box.
//
// Tree is not safe for concurrent use: refinement and derived-quantity
// access must be externally synchronized by the caller if shared across
// goroutines, the same way a single in-memory mesh is owned by the
// computation that drives it.
package qotree
