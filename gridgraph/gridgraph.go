// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *graph.Graph with gradient edge weights
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"github.com/arborescent/morphotree/graph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	offsets := make([][2]int, 0, 8)
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// forwardOffsets returns the subset of NeighborOffsets() that only looks
// "right" and "down" (and, under Conn8, the two downward diagonals). Walking
// every cell against this subset touches each grid edge exactly once, so
// ToGraph never has to deduplicate a pair it has already added.
func (gg *GridGraph) forwardOffsets() [][2]int {
	if gg.Conn == Conn8 {
		return [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	}

	return [][2]int{{1, 0}, {0, 1}}
}

// ToGraph converts the GridGraph into a *graph.Graph whose vertices are the
// cells in row-major order (vertex id = y*Width+x, i.e. gg.index(x,y)) and
// whose edges connect neighboring cells according to gg.Conn. The returned
// weights slice is aligned with edge ids (weights[e] is the weight of the
// edge AddEdge assigned id e to) and holds the absolute difference between
// the two endpoints' cell values — the usual gradient weighting a hierarchy
// is built over when CellValues holds pixel intensities. The result is
// ready to feed directly into bpt.Canonical or fusion.BinaryPartitionTree.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToGraph() (*graph.Graph, []int, error) {
	g, err := graph.NewGraph(gg.Width * gg.Height)
	if err != nil {
		return nil, nil, err
	}
	weights := make([]int, 0, gg.Width*gg.Height*2)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.index(x, y)
			for _, d := range gg.forwardOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				v := gg.index(nx, ny)
				if _, err := g.AddEdge(u, v); err != nil {
					continue
				}
				diff := gg.CellValues[y][x] - gg.CellValues[ny][nx]
				if diff < 0 {
					diff = -diff
				}
				weights = append(weights, diff)
			}
		}
	}

	return g, weights, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
