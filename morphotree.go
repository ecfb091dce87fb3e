package morphotree

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/bpt"
	"github.com/arborescent/morphotree/fusion"
	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/qfz"
	"github.com/arborescent/morphotree/saliency"
	"github.com/arborescent/morphotree/simplify"
	"github.com/arborescent/morphotree/tree"
)

// Canonical computes the canonical binary partition tree of g weighted by
// w, together with its companion minimum spanning tree. See bpt.Canonical.
func Canonical[W constraints.Ordered](g *graph.Graph, w []W) (bpt.Result[W], error) {
	return bpt.Canonical(g, w)
}

// BinaryPartitionTree computes the generic fusion-driven binary partition
// tree of g weighted by w under the given linkage rule. See
// fusion.BinaryPartitionTree.
func BinaryPartitionTree[W constraints.Ordered](g *graph.Graph, w []W, rule fusion.Rule[W]) (fusion.Result[W], error) {
	return fusion.BinaryPartitionTree(g, w, rule)
}

// Simplify deletes every interior, non-root node of t for which crit
// returns true. See simplify.Simplify.
func Simplify(t *tree.Tree, crit func(node int) bool) (simplify.Result, error) {
	return simplify.Simplify(t, crit)
}

// QuasiFlatZones computes the quasi-flat-zones hierarchy of g weighted by
// w. See qfz.Hierarchy.
func QuasiFlatZones[W constraints.Ordered](g *graph.Graph, w []W) (qfz.Result[W], error) {
	return qfz.Hierarchy(g, w)
}

// SaliencyMap re-projects t's node altitudes back onto g's edges. See
// saliency.Map.
func SaliencyMap[W constraints.Ordered](g *graph.Graph, t *tree.Tree, altitudes []W) ([]W, error) {
	return saliency.Map(g, t, altitudes)
}
