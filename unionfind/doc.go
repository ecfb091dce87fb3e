// Package unionfind implements a disjoint-set forest over the integers
// 0..n-1, with linking by rank and path compression so that Find runs in
// amortized, effectively-constant time (O(alpha(n))).
//
// The package is deliberately tiny: bpt.Canonical is its only caller, and it
// needs just Find and Link.
package unionfind
