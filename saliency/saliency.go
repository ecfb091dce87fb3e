package saliency

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/lca"
	"github.com/arborescent/morphotree/tree"
)

// Map returns a length-g.NumEdges() vector where entry e is
// altitudes[LCA(t, source(e), target(e))]: the altitude at which the two
// endpoints of e first belong to the same node of t.
//
// Precondition: t is a tree over the same leaves as g's vertices, altitudes
// has one entry per node of t, and g's edge ids form the contiguous range
// [0, g.NumEdges()) — true of any graph that has not had an edge removed
// since construction. Returns ErrSparseEdgeIDs otherwise.
func Map[W constraints.Ordered](g *graph.Graph, t *tree.Tree, altitudes []W) ([]W, error) {
	idx := lca.Build(t)

	edges := g.Edges()
	m := g.NumEdges()
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		if e.ID >= m {
			return nil, ErrSparseEdgeIDs
		}
		pairs[i] = [2]int{e.Source, e.Target}
	}

	ancestors := idx.Batch(pairs)

	out := make([]W, m)
	for i, e := range edges {
		out[e.ID] = altitudes[ancestors[i]]
	}

	return out, nil
}
