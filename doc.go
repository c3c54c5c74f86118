// Package chromatic is a parallel exact solver for the graph-coloring
// chromatic-number problem: given an undirected simple graph G, find the
// smallest k such that G admits a proper vertex coloring with k colors,
// and produce one such coloring.
//
// The solver is a Zykov-style branch-and-bound search over a sequence of
// successively contracted quotient graphs, driven by two bounding oracles:
// DSATUR (upper bound) and Bron–Kerbosch maximum clique (lower bound).
//
// Packages:
//
//	quotient - the contracted-graph value type with Merge / AddEdge
//	           operators, connected components, and subgraph extraction.
//	clique   - Bron–Kerbosch maximum-clique lower-bound oracle.
//	dsatur   - DSATUR greedy-coloring upper-bound oracle.
//	solver   - the branch-and-bound engine, branching-pair selection,
//	           shared incumbent, branch logging, and the fixed-depth
//	           work decomposer.
//	cluster  - peer-worker coordinator: rank/size execution model with
//	           reduction and broadcast collectives.
//	colfile  - DIMACS .col input and the solver report output format.
//	gen      - deterministic benchmark instance generators.
//
// The cmd/chromatic binary ties the packages together:
//
//	chromatic [-workers W] [-output DIR] <input.col> <time_limit_sec>
package chromatic
