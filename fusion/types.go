package fusion

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/tree"
)

// Descriptor describes one edge the algorithm must weight between a
// freshly fused region and one of its neighbours. It is owned by
// BinaryPartitionTree's internal scratch buffer and handed to the linkage
// Rule by reference for the duration of a single call: the rule must not
// retain the slice or any Descriptor past that call, since the buffer is
// reused across fusions.
type Descriptor[W constraints.Ordered] struct {
	// Neighbour is the vertex on the other side of Edge1 (and Edge2, if set).
	Neighbour int

	// Edge1 is the id of the edge linking one of the two merged regions to
	// Neighbour. It always survives: the algorithm relabels its endpoint
	// that used to be a merged region to the new region's id.
	Edge1 int

	// Edge2 is the id of the edge linking the *other* merged region to
	// Neighbour, or -1 if only one of the two regions bordered Neighbour.
	Edge2 int

	// NewEdgeWeight is the weight the rule computes for the surviving edge
	// Edge1 once it is relabeled to point at the new region. The rule must
	// call MarkWeighted after setting this, or the fusion loop reports
	// ErrContractViolation.
	NewEdgeWeight W

	weighted bool
}

// NumEdges returns 1 if only Edge1 connects Neighbour to the merged pair,
// or 2 if both regions had an edge to Neighbour (Edge2 is set).
func (d *Descriptor[W]) NumEdges() int {
	if d.Edge2 < 0 {
		return 1
	}

	return 2
}

// MarkWeighted records that the rule has set NewEdgeWeight for this
// descriptor. BinaryPartitionTree checks this flag on every descriptor
// after the rule returns and fails with ErrContractViolation if any were
// left unmarked.
func (d *Descriptor[W]) MarkWeighted(weight W) {
	d.NewEdgeWeight = weight
	d.weighted = true
}

// Rule is the linkage callback contract: given the graph's
// current state, the edge that triggered the fusion, the new region, the
// two regions that were merged to produce it, and the list of descriptors
// for every neighbour of the new region, compute each descriptor's
// NewEdgeWeight via MarkWeighted. Implementations must not retain graph or
// descriptors past the call.
type Rule[W constraints.Ordered] interface {
	Apply(g *graph.Graph, fusionEdge, newRegion, region1, region2 int, descriptors []Descriptor[W]) error
}

// Result bundles the tree and altitudes produced by BinaryPartitionTree.
type Result[W constraints.Ordered] struct {
	Tree      *tree.Tree
	Altitudes []W
}
