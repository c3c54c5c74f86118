// Package dsatur provides the upper-bound oracle of the coloring solver:
// a greedy proper coloring ordered by degree of saturation (DSATUR).
//
// At every step the algorithm colors the uncolored vertex with the highest
// saturation, breaking ties by higher current-graph degree and then by
// lowest index, and gives it the smallest color absent from its colored
// neighborhood. The number of colors used is an upper bound on χ of the
// graph it runs on; on a quotient graph the coloring also lifts through
// Mapping to a proper coloring of the original instance.
//
// Saturation update rule: after coloring v with color c, saturation of an
// uncolored neighbor w increases only when no other neighbor of w already
// carries c. Reference implementations sometimes recount distinct colors
// in N(w) instead; the two rules can differ once several same-colored
// neighbors appear, and this package deliberately keeps the former so
// search traces stay comparable across ports of the solver.
package dsatur
