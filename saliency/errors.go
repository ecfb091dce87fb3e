package saliency

import "errors"

// ErrSparseEdgeIDs indicates g's edge ids are not the contiguous range
// [0, g.NumEdges()), typically because an edge was removed from g after
// construction. Map's output is only well-defined when every edge id
// below g.NumEdges() is live.
var ErrSparseEdgeIDs = errors.New("saliency: graph has non-contiguous edge ids")
