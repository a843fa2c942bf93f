// This file implements Partition, the recursive binary space
// partitioner producing the leaf rooms of a floor plan.
package bsp

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/egresslab/egress/core"
)

// Partition carves [0,width]×[0,height] into leaf rooms and returns
// them inside a fresh core.Layout. Leaves tile the floor exactly and
// keep at least MinSize extent on both axes. See the package doc for
// the split rules.
//
// Complexity: O(2^MaxDepth) worst case.
func Partition(width, height float64, opts ...Option) (*core.Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	layout, err := core.NewLayout(width, height)
	if err != nil {
		return nil, fmt.Errorf("bsp: %w", err)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &splitter{opts: o, layout: layout}
	s.split(layout.Bounds(), 0)

	return layout, nil
}

// splitter carries the recursion state: the immutable options and the
// layout collecting leaves.
type splitter struct {
	opts   Options
	layout *core.Layout
}

// split recurses on region, appending leaves to the layout in
// depth-first order.
func (s *splitter) split(region core.Rect, depth int) {
	min2 := s.opts.minSize * 2
	if depth >= s.opts.maxDepth || region.W < min2 || region.H < min2 {
		s.leaf(region)
		return
	}

	// Past the leaf guard both extents are at least 2×minSize, so
	// whichever axis the draw picks can host a legal split.
	splitY := s.opts.rng.Intn(2) == 0
	switch {
	case splitY && region.H >= min2:
		at := s.opts.minSize + s.opts.rng.Float64()*(region.H-min2)
		s.split(core.Rect{X: region.X, Y: region.Y, W: region.W, H: at}, depth+1)
		s.split(core.Rect{X: region.X, Y: region.Y + at, W: region.W, H: region.H - at}, depth+1)
	case !splitY && region.W >= min2:
		at := s.opts.minSize + s.opts.rng.Float64()*(region.W-min2)
		s.split(core.Rect{X: region.X, Y: region.Y, W: at, H: region.H}, depth+1)
		s.split(core.Rect{X: region.X + at, Y: region.Y, W: region.W - at, H: region.H}, depth+1)
	default:
		s.leaf(region)
	}
}

// leaf registers region as a room with a random cosmetic kind.
func (s *splitter) leaf(region core.Rect) {
	kind := s.opts.kinds[s.opts.rng.Intn(len(s.opts.kinds))]
	s.layout.AddRoom(region, kind)
}
