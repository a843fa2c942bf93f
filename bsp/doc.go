// Package bsp partitions a rectangular floor into rooms by recursive
// binary space partitioning with randomized split axes and positions.
//
// What is the partitioner?
//
//	Partition(width, height, opts...) carves [0,width]×[0,height] into
//	leaf rooms and returns them inside a fresh core.Layout. Every leaf
//	keeps at least MinSize extent on both axes, and the leaves tile the
//	floor exactly: no gaps, no overlaps.
//
// How splitting works:
//
//  1. A region becomes a leaf when the depth limit is reached, or when
//     either dimension is below 2×MinSize (a split along it would leave
//     a half under MinSize).
//  2. Otherwise both extents are at least 2×MinSize, so both axes can
//     host a legal split; one is chosen uniformly at random and the
//     offset is drawn uniformly from [MinSize, extent−MinSize]. Both
//     halves recurse one level deeper.
//
// Determinism: all randomness flows from the injected *rand.Rand (or
// WithSeed); identical inputs and seed reproduce the identical layout.
//
// Complexity: O(2^MaxDepth) regions worst case; each split is O(1).
//
// Errors:
//
//	ErrOptionViolation     - a With* option received an invalid value.
//	core.ErrBadDimensions  - width or height is not strictly positive.
package bsp
