// Package pqueue implements the mergeable priority queue used by
// fusion.BinaryPartitionTree: a min-heap over (key, payload) pairs that
// hands back a stable Handle on Push, and keeps that handle valid across
// arbitrary Pop and Update calls so a caller can decrease (or increase) the
// key of an element it is still holding a reference to.
//
// A Fibonacci heap gets fusion.BinaryPartitionTree's decrease-key down to
// amortized O(1); this implementation is a generic indexed binary heap
// instead — every element tracks its own live slot, so Update can locate
// and re-heapify it in O(log n) without a separate position lookup table.
// Nothing calling into this package needs better than correctness plus
// amortized O(log n), so the simpler structure was chosen (see DESIGN.md,
// decision HEAP-1).
package pqueue
