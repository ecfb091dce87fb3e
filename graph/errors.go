package graph

import "errors"

// Sentinel errors returned by the graph package.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside
	// the graph's current vertex range.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id that does
	// not exist (never allocated, or already removed).
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNotAnEndpoint indicates SetEndpoint or OtherEndpoint was called with
	// a vertex that is not actually an endpoint of the given edge.
	ErrNotAnEndpoint = errors.New("graph: vertex is not an endpoint of edge")

	// ErrNegativeSize indicates NewGraph was called with a negative vertex count.
	ErrNegativeSize = errors.New("graph: negative vertex count")
)
