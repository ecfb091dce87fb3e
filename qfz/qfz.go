package qfz

import (
	"golang.org/x/exp/constraints"

	"github.com/arborescent/morphotree/bpt"
	"github.com/arborescent/morphotree/graph"
	"github.com/arborescent/morphotree/simplify"
	"github.com/arborescent/morphotree/tree"
)

// Result bundles the quasi-flat-zones tree and its node altitudes.
type Result[W constraints.Ordered] struct {
	Tree      *tree.Tree
	Altitudes []W
}

// Hierarchy computes the quasi-flat-zones hierarchy of g weighted by w: the
// canonical binary partition tree (bpt.Canonical) with every interior node
// whose altitude equals its parent's altitude — a constant-altitude
// plateau — collapsed via simplify.Simplify.
func Hierarchy[W constraints.Ordered](g *graph.Graph, w []W) (Result[W], error) {
	canon, err := bpt.Canonical(g, w)
	if err != nil {
		return Result[W]{}, err
	}

	t := canon.Tree
	altitudes := canon.Altitudes

	crit := func(v int) bool {
		return altitudes[v] == altitudes[t.Parent(v)]
	}

	simplified, err := simplify.Simplify(t, crit)
	if err != nil {
		return Result[W]{}, err
	}

	qfzAltitudes := make([]W, len(simplified.NodeMap))
	for i, orig := range simplified.NodeMap {
		qfzAltitudes[i] = altitudes[orig]
	}

	return Result[W]{Tree: simplified.Tree, Altitudes: qfzAltitudes}, nil
}
