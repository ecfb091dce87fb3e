package fusion

import "errors"

// ErrWeightsLengthMismatch indicates len(weights) != graph.NumEdges().
var ErrWeightsLengthMismatch = errors.New("fusion: weights length does not match graph edge count")

// ErrContractViolation indicates a linkage rule returned without setting
// NewEdgeWeight (via MarkWeighted) on every descriptor it was handed, a
// violation of the Rule callback contract.
var ErrContractViolation = errors.New("fusion: linkage rule left a descriptor unweighted")

// ErrInternalInvariant indicates a debug-mode bug check failed — e.g. a
// fusion step tried to merge two endpoints that were already the same
// region. It is fatal: it signals a bug in this package, not bad input.
var ErrInternalInvariant = errors.New("fusion: internal invariant violated")
