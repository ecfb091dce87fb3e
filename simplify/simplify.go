package simplify

import (
	"github.com/arborescent/morphotree/internal/diag"
	"github.com/arborescent/morphotree/tree"
)

// Result bundles the simplified tree together with the map from its node
// indices back to the indices of the tree Simplify was given.
type Result struct {
	Tree    *tree.Tree
	NodeMap []int
}

// Simplify deletes every interior, non-root node of t for which crit
// returns true, reassigning its children to its own parent. Leaves are
// never deleted regardless of what crit would say about them — crit is
// only ever called with an interior, non-root node id.
//
// Complexity: O(n) in two linear passes over t's node indices.
func Simplify(t *tree.Tree, crit func(node int) bool) (Result, error) {
	n := t.NumNodes()
	root := t.Root()

	copyParent := make([]int, n)
	for i := 0; i < n; i++ {
		copyParent[i] = t.Parent(i)
	}

	// Pass 1: root -> leaves. For every deleted interior node, splice its
	// children onto its own (surviving) parent, and record the running
	// count of deletions seen so far through this position.
	deletedAfter := make([]int, n)
	count := 0
	for _, i := range t.RootToLeaves(tree.ExcludeLeaves, tree.ExcludeRoot) {
		par := copyParent[i]
		if crit(i) {
			for _, c := range t.Children(i) {
				copyParent[c] = par
			}
			count++
		}
		deletedAfter[i] = count
	}
	total := count

	// Transform to "deletions seen before this position", so an old index
	// maps to its new index by plain subtraction.
	deletedBefore := make([]int, n)
	for i := 0; i < n; i++ {
		deletedBefore[i] = total - deletedAfter[i]
	}

	newN := n - total
	newParent := make([]int, newN)
	for i := range newParent {
		newParent[i] = i
	}
	nodeMap := make([]int, newN)

	// Pass 2: leaves -> root, skipping deleted interior nodes, remapping
	// every surviving node's parent by the deletion count seen before it.
	idx := 0
	for _, i := range t.LeavesToRoot(tree.IncludeLeaves, tree.ExcludeRoot) {
		if t.IsLeaf(i) || !crit(i) {
			par := copyParent[i]
			nodeMap[idx] = i
			newParent[idx] = par - deletedBefore[par]
			idx++
		}
	}
	nodeMap[newN-1] = root

	newTree, err := tree.New(newParent, t.NumLeaves())
	if err != nil {
		return Result{}, err
	}

	diag.Trace("simplify: tree simplified", map[string]any{"nodes_before": n, "nodes_after": newN, "deleted": total})

	return Result{Tree: newTree, NodeMap: nodeMap}, nil
}
