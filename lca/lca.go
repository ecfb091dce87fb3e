package lca

import "github.com/arborescent/morphotree/tree"

// Index is a preprocessed tree ready to answer lowest-common-ancestor
// queries in O(1) each.
type Index struct {
	euler []int // node visited at each Euler-tour position
	depth []int // depth of euler[i], i.e. distance from root
	first []int // node -> first position it appears at in euler

	// sparse[k][i] holds the Euler-tour position with minimum depth within
	// the window [i, i+2^k).
	sparse [][]int
	logTab []int
}

// Build preprocesses t for repeated LCA queries. Complexity: O(n log n).
func Build(t *tree.Tree) *Index {
	euler, depth, first := eulerTour(t)

	idx := &Index{euler: euler, depth: depth, first: first}
	idx.buildSparseTable()

	return idx
}

// eulerTour walks t iteratively (no recursion, so depth is not bounded by
// the Go call stack) and records, at every step, the current node and its
// depth. Each node appears once per time it is entered or returned to, for
// a tour of length 2*(n-1)+1 over an n-node tree.
func eulerTour(t *tree.Tree) (euler []int, depth []int, first []int) {
	n := t.NumNodes()
	first = make([]int, n)
	for i := range first {
		first[i] = -1
	}

	type frame struct {
		node     int
		children []int
		next     int
	}

	root := t.Root()
	stack := []frame{{node: root, children: t.Children(root)}}
	curDepth := 0

	euler = append(euler, root)
	depth = append(depth, 0)
	first[root] = 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			curDepth++
			euler = append(euler, child)
			depth = append(depth, curDepth)
			if first[child] == -1 {
				first[child] = len(euler) - 1
			}
			stack = append(stack, frame{node: child, children: t.Children(child)})
		} else {
			stack = stack[:len(stack)-1]
			curDepth--
			if len(stack) > 0 {
				euler = append(euler, stack[len(stack)-1].node)
				depth = append(depth, curDepth)
			}
		}
	}

	return euler, depth, first
}

func (idx *Index) buildSparseTable() {
	m := len(idx.depth)
	idx.logTab = make([]int, m+1)
	for i := 2; i <= m; i++ {
		idx.logTab[i] = idx.logTab[i/2] + 1
	}

	levels := idx.logTab[m] + 1
	idx.sparse = make([][]int, levels)
	idx.sparse[0] = make([]int, m)
	for i := 0; i < m; i++ {
		idx.sparse[0][i] = i
	}

	for k := 1; k < levels; k++ {
		half := 1 << (k - 1)
		length := m - (1 << k) + 1
		if length < 0 {
			length = 0
		}
		idx.sparse[k] = make([]int, length)
		for i := 0; i < length; i++ {
			left := idx.sparse[k-1][i]
			right := idx.sparse[k-1][i+half]
			if idx.depth[left] <= idx.depth[right] {
				idx.sparse[k][i] = left
			} else {
				idx.sparse[k][i] = right
			}
		}
	}
}

// rangeMinPos returns the Euler-tour position of minimum depth within the
// inclusive range [l, r].
func (idx *Index) rangeMinPos(l, r int) int {
	if l > r {
		l, r = r, l
	}
	k := idx.logTab[r-l+1]
	left := idx.sparse[k][l]
	right := idx.sparse[k][r-(1<<k)+1]
	if idx.depth[left] <= idx.depth[right] {
		return left
	}

	return right
}

// Query returns the lowest common ancestor of u and v. Complexity: O(1).
func (idx *Index) Query(u, v int) int {
	if u == v {
		return u
	}
	l, r := idx.first[u], idx.first[v]
	pos := idx.rangeMinPos(l, r)

	return idx.euler[pos]
}

// Batch answers a batch of LCA queries, one per (u, v) pair, in the order
// given. Complexity: O(k) after preprocessing, so O(n log n + k) overall —
// this is the entry point saliency.Map drives with one pair per graph edge.
func (idx *Index) Batch(pairs [][2]int) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = idx.Query(p[0], p[1])
	}

	return out
}
