// Package colfile reads DIMACS .col instances and renders the solver's
// output report.
//
// The input format is line-oriented ASCII: lines starting with "c" are
// comments, a single "p edge N M" line declares the instance size, and
// "e u v" lines give undirected edges between 1-indexed vertices.
// Duplicate edges are absorbed by set semantics; an edge naming a
// vertex outside [1, N] is silently dropped, matching the lenient
// reference behavior (the declared edge count is returned so callers
// can detect the mismatch if they care).
package colfile
