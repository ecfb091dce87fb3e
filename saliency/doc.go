// Package saliency re-projects a node-weighted tree back onto the edges of
// the graph it was built from: each edge's saliency is the altitude of the
// lowest common ancestor of its two endpoints in the tree.
//
// Grounded 1:1 on hierarchy_core.hpp::saliency_map, using package lca in
// batch mode to answer one LCA query per graph edge in O(n log n + m).
package saliency
