// Package graph defines the mutable undirected graph model consumed by the
// rest of morphotree: stable integer vertex and edge ids, hashed adjacency
// per vertex, and the handful of mutating operations the hierarchy builders
// need (add vertex, remove edge, relabel one endpoint of an edge in place).
//
// Vertices are numbered 0..n-1 at construction and may grow past n as
// fusion.BinaryPartitionTree allocates new interior-node vertices. Edge ids
// are assigned at construction time in 0..m-1 and are never reused after
// removal, so a stale id is always recognizable as "not present" rather than
// silently referring to a different edge.
//
// Multi-edges between the same pair of vertices are legal and preserved:
// two parallel edges are distinct ids until something downstream collapses
// them.
package graph
