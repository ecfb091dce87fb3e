package bpt

import "errors"

// ErrWeightsLengthMismatch indicates len(weights) != graph.NumEdges().
var ErrWeightsLengthMismatch = errors.New("bpt: weights length does not match graph edge count")

// ErrDisconnectedGraph indicates the Kruskal scan exhausted every edge
// before finding n-1 merges, i.e. the input graph is not connected.
var ErrDisconnectedGraph = errors.New("bpt: graph is disconnected")
