// Package solver implements the Zykov branch-and-bound engine of the
// chromatic-number solver.
//
// Each node of the search holds a quotient graph. The engine computes a
// lower bound (maximum clique, package clique) and an upper bound with a
// witness coloring (package dsatur), offers the witness to the shared
// incumbent, prunes when the bounds meet or when the lower bound cannot
// beat the incumbent, and otherwise branches on a non-adjacent vertex
// pair of maximal degree sum: one child merges the pair (same color),
// the other adds the edge (different color).
//
// # Parallelism
//
// A Search owns a cooperative task pool capped at Threads concurrent
// workers. When the current graph is large enough (MinVerticesForTask)
// and the node is shallow enough (MaxTaskDepth), both children are
// submitted as tasks and joined at the branching node; otherwise the
// recursion stays sequential in place. Pool slots are claimed with a
// non-blocking acquire, so a branch whose pool is saturated simply runs
// its children inline and no join can ever deadlock.
//
// The only shared mutable state is the Incumbent: writes are serialized,
// while pruning reads are lock-free and may observe a stale (larger)
// bound, which merely weakens one prune and is corrected on the next read.
//
// # Time budget
//
// Every node checks the wall clock at entry. Past the limit the node
// clears the search-completed flag and returns; descendants quickly fail
// the same check. The best solution found so far remains valid, so a
// timeout is a quality statement, never an error.
//
// The fixed-depth Decompose pass reuses the same recursion to unroll the
// tree into a flat list of self-contained subproblem graphs for
// distribution across peer workers (package cluster).
package solver
