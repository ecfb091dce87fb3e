// Package linkage implements the three canonical linkage rules for
// fusion.BinaryPartitionTree: single, complete, and weighted-average, each
// satisfying the fusion.Rule callback contract. All three follow
// binary_partition_tree_min_linkage / _complete_linkage / _average_linkage
// in Higra's binary_partition_tree.hpp directly.
//
// Single and complete linkage keep no state beyond the weights vector they
// are built over: they read the weights of a descriptor's Edge1/Edge2 ids
// from it and write the result back into that same vector. Average linkage needs more than the current weight can
// express — the running mass of each region — so it owns two side vectors
// (values, masses) indexed by edge id; see Decision AL-1 in DESIGN.md for
// why those side tables, not the edge-weights vector, are the rule's
// source of truth.
package linkage
