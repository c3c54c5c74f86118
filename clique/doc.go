// Package clique provides the lower-bound oracle of the coloring solver:
// a maximum-clique search based on the Bron–Kerbosch enumeration of
// maximal cliques with pivoting.
//
// A clique of size k forces at least k colors, so ω(G) ≤ χ(G); because
// Zykov operators only ever identify non-adjacent vertices or add edges,
// a clique bound computed on any quotient graph remains a valid lower
// bound for the original instance.
//
// The enumeration is exponential in the worst case. The solver treats it
// as an oracle whose runtime is absorbed by the outer search time budget;
// no internal cap is applied here.
package clique
