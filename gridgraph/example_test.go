// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/arborescent/morphotree/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water; any value >= LandThreshold (1) is land, so the
//     values 1, 2 and 3 are not told apart
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two islands, cells listed in BFS order:
//     – {(1,0),(2,0),(1,1),(0,1),(0,2)} (the 3 at (0,2) touches the 1 at (0,1))
//     – {(4,0),(4,1),(3,1),(3,2),(2,2)}
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, _ := gridgraph.NewGridGraph(grid, opts)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water‐cell conversions to connect two islands in the grid.
// Scenario:
//
//   - Same grid and Conn4 as above.
//   - Connect component 0 (left island) to component 1 (right island).
//   - Each water cell converted costs 1.
//
// Expected: one water cell converted, path (0,2)->(1,2)->(2,2).
//
// Complexity: O(W·H) on average, Memory: O(W·H)
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, _ := gridgraph.NewGridGraph(grid, opts)

	_ = gg.ConnectedComponents()
	// Connect comp 0 → comp 1:
	path, cost, _ := gg.ExpandIsland(0, 1)

	fmt.Printf("Convert %d water cells along path:\n", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	// Output:
	// Convert 1 water cells along path:
	// (0,2) (1,2) (2,2)
}
