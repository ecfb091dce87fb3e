package fusion

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/internal/diag"
	"github.com/arborescent/morphotree/pqueue"
	"github.com/arborescent/morphotree/tree"
)

// DebugChecks gates the ErrInternalInvariant consistency check. It defaults
// to false; enable it in tests or development builds. When enabled, every
// fusion step checks that the popped edge's two endpoints are distinct
// regions.
var DebugChecks = false

// BinaryPartitionTree computes the binary partition tree of g weighted by
// w, merging the smallest-weight edge at every step and delegating the
// weight of every edge the merge creates to rule.
//
// Precondition: len(w) == g.NumEdges(); rule satisfies the Rule contract.
// Postcondition: when g is connected, the returned tree has 2*n-1 nodes.
//
// g itself is never mutated: the algorithm runs against an internal clone
// (graph.Graph.Clone).
func BinaryPartitionTree[W constraints.Ordered](g *graph.Graph, w []W, rule Rule[W]) (Result[W], error) {
	n := g.NumVertices()
	if len(w) != g.NumEdges() {
		return Result[W]{}, ErrWeightsLengthMismatch
	}

	work := g.Clone()
	numTreeNodes := 2*n - 1

	parent := make([]int, numTreeNodes)
	altitudes := make([]W, numTreeNodes)
	for i := range parent {
		parent[i] = i
	}

	numOrigEdges := work.NumEdges()
	active := make([]bool, numOrigEdges)
	handles := make([]pqueue.Handle[W, int], numOrigEdges)

	heap := pqueue.New[W, int]()
	for _, e := range work.Edges() {
		handles[e.ID] = heap.Push(w[e.ID], e.ID)
		active[e.ID] = true
	}

	idxOf := make(map[int]int)
	var descriptors []Descriptor[W]

	currentNumNodes := n

	for !heap.Empty() && currentNumNodes < numTreeNodes {
		weight, e, _ := heap.Pop()
		if !active[e] {
			continue
		}
		active[e] = false

		r1, r2, err := work.EdgeEndpoints(e)
		if err != nil {
			return Result[W]{}, err
		}
		if DebugChecks && r1 == r2 {
			return Result[W]{}, ErrInternalInvariant
		}

		p := work.AddVertex()
		parent[r1] = p
		parent[r2] = p
		altitudes[p] = weight
		currentNumNodes++

		if err := work.RemoveEdge(e); err != nil {
			return Result[W]{}, err
		}

		descriptors = descriptors[:0]
		exploreRegion(work, r1, &descriptors, idxOf)
		exploreRegion(work, r2, &descriptors, idxOf)
		for i := range descriptors {
			delete(idxOf, descriptors[i].Neighbour)
		}

		if len(descriptors) == 0 {
			// The two fused regions were each other's last neighbour: this
			// is the terminal merge, so there is nothing left to reweight.
			continue
		}

		if err := rule.Apply(work, e, p, r1, r2, descriptors); err != nil {
			return Result[W]{}, err
		}

		for i := range descriptors {
			d := &descriptors[i]
			if !d.weighted {
				return Result[W]{}, ErrContractViolation
			}

			if d.Edge2 >= 0 {
				active[d.Edge2] = false
				if err := work.RemoveEdge(d.Edge2); err != nil {
					return Result[W]{}, err
				}
			}

			oldEnd, err := work.OtherEndpoint(d.Edge1, d.Neighbour)
			if err != nil {
				return Result[W]{}, err
			}
			if err := work.SetEndpoint(d.Edge1, oldEnd, p); err != nil {
				return Result[W]{}, err
			}

			heap.Update(handles[d.Edge1], d.NewEdgeWeight, d.Edge1)
			active[d.Edge1] = true
		}
	}

	diag.Trace("fusion: binary partition tree built", map[string]any{"n": n, "nodes": currentNumNodes})

	t, err := tree.New(parent, n)
	if err != nil {
		return Result[W]{}, err
	}

	return Result[W]{Tree: t, Altitudes: altitudes}, nil
}

// exploreRegion walks region's current out-edges, appending a fresh
// descriptor for each neighbour not already seen this fusion step, or
// filling in Edge2 of an existing descriptor if the neighbour was already
// reached from the other merged region.
func exploreRegion[W constraints.Ordered](g *graph.Graph, region int, descriptors *[]Descriptor[W], idxOf map[int]int) {
	for _, e := range g.OutEdges(region) {
		nb, err := g.OtherEndpoint(e, region)
		if err != nil {
			continue
		}
		if i, ok := idxOf[nb]; ok {
			(*descriptors)[i].Edge2 = e
			continue
		}
		idxOf[nb] = len(*descriptors)
		*descriptors = append(*descriptors, Descriptor[W]{Neighbour: nb, Edge1: e, Edge2: -1})
	}
}
