// Package quotient implements the mutable-by-derivation graph model that
// drives Zykov branch-and-bound for graph coloring.
//
// A quotient Graph is an undirected simple graph whose current vertices are
// super-vertices: each one stands for a non-empty set of vertices of the
// original input graph, recorded in Mapping. The two Zykov operators derive
// fresh graphs and never mutate their receiver:
//
//	Merge(i, j)   - identify two non-adjacent vertices ("same color" branch).
//	AddEdge(i, j) - forbid equal colors ("different color" branch).
//
// An edge (i, j) in the current graph means that every pair of original
// vertices (a, b) with a ∈ Mapping[i], b ∈ Mapping[j] must receive distinct
// colors in any proper coloring of the original graph. This is the property
// that makes Zykov branching sound: a proper coloring of any quotient lifts
// to a proper coloring of the original through Mapping.
//
// Invariants maintained by NewGraph, Clone, Merge and AddEdge:
//
//	(a) no vertex is adjacent to itself;
//	(b) the Mapping rows partition [0, OrigN);
//	(c) N ≤ OrigN;
//	(d) adjacency is symmetric.
//
// ExtractSubgraph keeps OrigN but only the rows of the extracted
// vertices, so for a proper subset of vertices (b) does not hold and
// Validate reports ErrBrokenMapping.
//
// The package also carries the component pre-pass used to split a solve:
// ConnectedComponents (BFS) and ExtractSubgraph.
package quotient
