// Package gen builds standard benchmark instances for the coloring
// solver: cycles, complete graphs, circulants, the Petersen graph, and
// Erdős–Rényi random graphs.
//
// All generators are deterministic: vertices are emitted in ascending
// index order, edges in a fixed scan order, and RandomSparse draws its
// Bernoulli trials from a caller-seeded source, so a fixed seed always
// reproduces the same instance. Every generated graph satisfies the
// quotient invariants (symmetric adjacency, no self-loops, identity
// mapping) and known chromatic numbers where the family has one:
// χ(C_n) is 2 or 3 by parity, χ(K_n) = n, χ(Petersen) = 3.
package gen
