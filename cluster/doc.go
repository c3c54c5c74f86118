// Package cluster coordinates several peer solver workers over a
// message-passing fabric of buffered channels, one goroutine per rank.
//
// The coordinator picks one of two distribution policies:
//
//   - Multi-component instances: connected components are dealt
//     round-robin, component i to rank i mod W. Each rank solves its
//     components to optimality, then the per-rank color counts are
//     reduced by MAX and the partial colorings merged element-wise on
//     the root. Components are colored independently with overlapping
//     palettes, so the instance-level answer is the maximum, not the
//     sum, of the component answers.
//
//   - Single-component instances: every rank unrolls the identical
//     decomposition frontier (the decomposer consults no shared state),
//     rank r solves tasks i with i mod W == r, and the best count is
//     combined by an allreduce-min. The lowest rank holding the minimum
//     broadcasts its coloring to everyone.
//
// Every rank joins every collective in the same order, which is what
// keeps the fabric deadlock-free; the collectives themselves are thin
// gather-to-root and broadcast loops over per-pair buffered channels.
//
// Timeouts never fail a run. A rank that exhausts its budget keeps its
// best incumbent and reports completed=false; the reduced flag tells
// the caller whether the final answer is proven optimal or merely the
// best found within the limit.
package cluster
