package bpt

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/internal/diag"
	"github.com/arborescent/morphotree/tree"
	"github.com/arborescent/morphotree/unionfind"
)

// Result bundles everything Canonical produces: the tree itself, its node
// altitudes, the companion minimum spanning tree (as its own small graph
// over the same n vertices), and the map from MST edge id back to the
// original graph's edge id.
type Result[W constraints.Ordered] struct {
	Tree       *tree.Tree
	Altitudes  []W
	MST        *graph.Graph
	MSTEdgeMap []int
}

// Canonical computes the canonical binary partition tree of g weighted by
// weights (weights[e] is the weight of edge id e) and its companion MST.
//
// Precondition: len(weights) == g.NumEdges() and g is connected.
// Postcondition: Altitudes is non-decreasing from leaves to root; MSTEdgeMap
// is a selection of exactly n-1 distinct edge ids from g's edge id space.
//
// Algorithm (Kruskal-with-tree-nodes):
//  1. Sort edge ids by weight using a stable sort, so tied weights keep
//     their original id order and the tree shape is deterministic.
//  2. Walk the sorted edges; whenever an edge connects two different
//     components, allocate a new interior tree node as their union's
//     representative and record the edge in the MST.
//  3. Stop once n-1 merges have happened; if the scan runs out of edges
//     first, g is disconnected.
//
// Complexity: O(m log m) for the sort, O(m alpha(n)) for the union-find
// walk. Space: O(n + m).
func Canonical[W constraints.Ordered](g *graph.Graph, weights []W) (Result[W], error) {
	n := g.NumVertices()
	m := g.NumEdges()
	if len(weights) != m {
		return Result[W]{}, ErrWeightsLengthMismatch
	}

	edges := g.Edges()
	order := make([]int, len(edges))
	for i, e := range edges {
		order[i] = e.ID
	}
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] < weights[order[j]]
	})

	uf := unionfind.New(n)
	// roots[c] is the tree node currently representing union-find component c.
	roots := make([]int, n)
	for v := 0; v < n; v++ {
		roots[v] = v
	}

	numTreeNodes := 2*n - 1
	parent := make([]int, numTreeNodes)
	for i := range parent {
		parent[i] = i
	}
	altitudes := make([]W, numTreeNodes)

	mst, err := graph.NewGraph(n)
	if err != nil {
		return Result[W]{}, err
	}
	mstEdgeMap := make([]int, n-1)

	numNodes := n
	edgesFound := 0

	for _, e := range order {
		if edgesFound == n-1 {
			break
		}
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return Result[W]{}, err
		}
		c1, c2 := uf.Find(u), uf.Find(v)
		if c1 == c2 {
			continue
		}

		k := numNodes
		altitudes[k] = weights[e]
		parent[roots[c1]] = k
		parent[roots[c2]] = k
		newRoot := uf.Link(c1, c2)
		roots[newRoot] = k

		if _, err := mst.AddEdge(u, v); err != nil {
			return Result[W]{}, err
		}
		mstEdgeMap[edgesFound] = e

		numNodes++
		edgesFound++
	}

	if edgesFound != n-1 {
		diag.Debug("bpt: graph disconnected", map[string]any{"edges_found": edgesFound, "required": n - 1})
		return Result[W]{}, ErrDisconnectedGraph
	}

	t, err := tree.New(parent, n)
	if err != nil {
		return Result[W]{}, err
	}

	diag.Trace("bpt: canonical tree built", map[string]any{"n": n, "m": m})

	return Result[W]{Tree: t, Altitudes: altitudes, MST: mst, MSTEdgeMap: mstEdgeMap}, nil
}
