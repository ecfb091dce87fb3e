package tree

import "errors"

// ErrInvalidParent indicates a parent vector violates the layout contract:
// every non-root index i must map to parent[i] > i, and parent[root] == root
// for exactly one root.
var ErrInvalidParent = errors.New("tree: parent vector violates parent[i] > i layout")

// ErrNoRoot indicates a parent vector has no self-parenting index at all.
var ErrNoRoot = errors.New("tree: no root found in parent vector")
