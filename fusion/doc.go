// Package fusion computes a generic binary partition tree driven by a
// pluggable linkage rule, rather than the fixed altitude-ordering of
// package bpt. At every step the smallest-weight edge in the current graph
// is contracted, and the caller-supplied linkage rule decides the weight of
// every edge the contraction creates between the new region and its
// neighbours — see L. Najman, J. Cousty, B. Perret, "Playing with Kruskal:
// algorithms for morphological trees in edge-weighted graphs", ISMM 2013,
// §5, and Higra's binary_partition_tree.hpp, which this package follows
// directly.
package fusion
