// Package morphotree builds morphological hierarchies over edge-weighted
// graphs: the binary partition tree by altitude ordering and its companion
// minimum spanning tree, a generic fusion-driven binary partition tree
// behind a pluggable linkage rule, the quasi-flat-zones hierarchy, and the
// saliency map that re-projects a node-weighted tree back onto the graph's
// edges.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	graph/    — mutable undirected graph with stable vertex/edge ids
//	unionfind/ — disjoint-set forest (linking by rank, path compression)
//	pqueue/   — mergeable min-heap with stable handles
//	tree/     — immutable-parent tree + leaf/root iterators
//	lca/      — batched lowest-common-ancestor queries
//	bpt/      — bpt_canonical: Kruskal-style canonical BPT + MST
//	fusion/   — binary_partition_tree: generic fusion loop
//	linkage/  — single/complete/average linkage rules for fusion
//	simplify/ — simplify_tree: interior-node deletion + remapping
//	qfz/      — quasi_flat_zones_hierarchy
//	saliency/ — saliency_map
//	gridgraph/ — 2D grid to edge-weighted graph, an external collaborator
//	            producing the (graph, weights) pairs the core operates on
//	internal/diag/ — thin zerolog wrapper the hierarchy builders trace through
//
// This root package re-exports the five library entry points as thin
// forwarding wrappers so a caller whose needs stop at the common path can
// import just "github.com/arborescent/morphotree"; every subpackage above
// remains independently importable for callers who need its types
// directly (a custom fusion.Rule, a raw tree.Tree, and so on).
//
// The core is single-threaded and cooperative: no goroutines, no internal
// parallelism, no persistence. See each subpackage's own doc comment for
// the algorithm it implements and what it is grounded on.
package morphotree
