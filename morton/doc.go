// Package morton packs and unpacks axis-aligned cell pointers into a single
// unsigned integer index.
//
// A pointer (coords..., level) is encoded by bit-interleaving the per-axis
// coordinates (Z-order / Morton order) into the high bits of a uint64 and
// storing the refinement level in the low bits:
//
//	index = interleave(coords) << levelBits | level
//
// Interleaving gives points that are close in space a tendency to be close
// in index order, and makes the parent of any cell reachable in O(1) by
// masking off the low bits of each coordinate (see Parent). Encode and
// Decode are exact inverses over the domain a Codec is constructed for.
package morton
