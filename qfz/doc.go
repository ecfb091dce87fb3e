// Package qfz computes the quasi-flat-zones hierarchy of an edge-weighted
// graph: the canonical binary partition tree (package bpt) with every
// constant-altitude plateau collapsed via package simplify.
//
// Grounded 1:1 on hierarchy_core.hpp::quasi_flat_zones_hierarchy.
package qfz
