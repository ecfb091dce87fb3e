// Package bpt computes the canonical binary partition tree of an
// edge-weighted graph — the binary partition tree by altitude ordering —
// together with its by-product minimum spanning tree.
//
// The algorithm is Kruskal's MST construction with a twist: every time two
// components are merged, a new interior tree node is allocated to represent
// the union, rather than just recording the edge. Sorting ties are broken
// by a stable sort over edge id, so the resulting tree shape is fully
// deterministic for a given (graph, weights) pair — see
// L. Najman, J. Cousty, B. Perret, "Playing with Kruskal: algorithms for
// morphological trees in edge-weighted graphs", ISMM 2013, which this
// package's algorithm follows directly.
package bpt
