package linkage

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/fusion"
	"github.com/arborescent/morphotree/graph"
)

// Single implements single-linkage clustering: the distance between a new
// region and a neighbour is the minimum of the weights of the (up to two)
// edges that used to connect the neighbour to the two pre-merge regions.
//
// Single wraps the weights vector it was built from and mutates it in
// place, so its Edge1/Edge2 lookups always see the latest value even
// across repeated fusions — exactly the min-linkage functor in
// binary_partition_tree.hpp.
type Single[W constraints.Ordered] struct {
	Weights []W
}

// NewSingle returns a Single linkage rule operating over w. w is retained
// and mutated by Apply; callers should not read it for any other purpose
// while BinaryPartitionTree is running.
func NewSingle[W constraints.Ordered](w []W) *Single[W] {
	return &Single[W]{Weights: w}
}

// Apply implements fusion.Rule.
func (s *Single[W]) Apply(_ *graph.Graph, _ int, _ int, _ int, _ int, descriptors []fusion.Descriptor[W]) error {
	for i := range descriptors {
		d := &descriptors[i]
		min := s.Weights[d.Edge1]
		if d.Edge2 >= 0 && s.Weights[d.Edge2] < min {
			min = s.Weights[d.Edge2]
		}
		s.Weights[d.Edge1] = min
		d.MarkWeighted(min)
	}

	return nil
}

// Complete implements complete-linkage clustering: the distance between a
// new region and a neighbour is the maximum of the weights of the (up to
// two) edges that used to connect the neighbour to the two pre-merge
// regions. Mirrors binary_partition_tree_complete_linkage.
type Complete[W constraints.Ordered] struct {
	Weights []W
}

// NewComplete returns a Complete linkage rule operating over w, with the
// same mutate-in-place contract as Single.
func NewComplete[W constraints.Ordered](w []W) *Complete[W] {
	return &Complete[W]{Weights: w}
}

// Apply implements fusion.Rule.
func (c *Complete[W]) Apply(_ *graph.Graph, _ int, _ int, _ int, _ int, descriptors []fusion.Descriptor[W]) error {
	for i := range descriptors {
		d := &descriptors[i]
		max := c.Weights[d.Edge1]
		if d.Edge2 >= 0 && c.Weights[d.Edge2] > max {
			max = c.Weights[d.Edge2]
		}
		c.Weights[d.Edge1] = max
		d.MarkWeighted(max)
	}

	return nil
}

// Numeric narrows constraints.Ordered to the types average linkage's
// arithmetic (+, *, /) actually requires — constraints.Ordered alone
// admits string, which has no division.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Average implements weighted-average-linkage clustering. Every edge
// carries a value (the quantity being averaged, e.g. a feature distance)
// and a mass (the weight the average is taken over, e.g. region size).
// When a neighbour bordered both merged regions, the two edges' values are
// combined mass-weighted; otherwise the single surviving edge passes
// through unchanged. Mirrors binary_partition_tree_average_linkage.
//
// Per Decision AL-1 (see DESIGN.md), Values and Masses — not any external
// edge-weights vector — are the single source of truth Apply reads from
// and writes back into; they are indexed by edge id exactly like the
// graph's own edge-weights vector and must have the same length.
type Average[W Numeric] struct {
	Values []W
	Masses []W
}

// NewAverage returns an Average linkage rule seeded with the initial
// per-edge value and mass vectors. Both are retained and mutated by Apply.
func NewAverage[W Numeric](values, masses []W) *Average[W] {
	return &Average[W]{Values: values, Masses: masses}
}

// Apply implements fusion.Rule.
func (a *Average[W]) Apply(_ *graph.Graph, _ int, _ int, _ int, _ int, descriptors []fusion.Descriptor[W]) error {
	for i := range descriptors {
		d := &descriptors[i]
		var newValue, newMass W
		if d.Edge2 >= 0 {
			newMass = a.Masses[d.Edge1] + a.Masses[d.Edge2]
			newValue = (a.Values[d.Edge1]*a.Masses[d.Edge1] + a.Values[d.Edge2]*a.Masses[d.Edge2]) / newMass
		} else {
			newMass = a.Masses[d.Edge1]
			newValue = a.Values[d.Edge1]
		}
		a.Values[d.Edge1] = newValue
		a.Masses[d.Edge1] = newMass
		d.MarkWeighted(newValue)
	}

	return nil
}
