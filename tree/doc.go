// Package tree is the immutable-parent tree used throughout morphotree to
// represent a binary partition hierarchy: a parent vector of length N with
// leaves at indices [0, n) and interior nodes at [n, N) in creation order,
// so that parent[i] > i for every non-root i. That layout turns a
// leaves-to-root traversal into a linear forward scan and a root-to-leaves
// traversal into a linear backward scan — no explicit stack or recursion is
// needed for either direction.
package tree
