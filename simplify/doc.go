// Package simplify deletes interior nodes of a tree.Tree that satisfy a
// caller-supplied criterion, splicing each deleted node's children onto its
// own parent and returning the resulting tree alongside a node_map back to
// the original tree's indices. Leaves are never deleted, regardless of
// what the criterion says about them.
//
// Grounded 1:1 on hierarchy_core.hpp's simplify_tree: a root-to-leaves pass
// counts deletions and records "deletions seen so far" per original index,
// then a leaves-to-root pass uses that count to remap surviving indices by
// simple subtraction.
package simplify
