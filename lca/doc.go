// Package lca preprocesses a tree once so that many lowest-common-ancestor
// queries over its leaves (or any of its nodes) can be answered quickly
// afterwards. saliency.Map is the primary caller: it needs one LCA query
// per graph edge.
//
// The index is built from an Euler tour of the tree plus a sparse table for
// range-minimum queries over per-position depth, the classical reduction of
// LCA to RMQ. Preprocessing is O(n log n) and each query (single or batched)
// is O(1) once the table is built, so a batch of k queries costs
// O(n log n + k) overall; a true O(n)-build RMQ (Farach-Colton/Bender) was
// judged not worth the added complexity here (see DESIGN.md, decision LCA-1).
package lca
