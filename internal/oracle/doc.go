// Package oracle implements the deliberately naive reference graph used
// only by eulerforest's tests: an adjacency-set undirected graph with
// on-demand DFS connectivity, grounded on the reference implementation's
// SimpleGraph (original_source/simple_graph.h). It exists to cross-check
// eulerforest.Forest against an obviously-correct, obviously-slow
// implementation — it is not part of the public API and must never be
// imported outside of _test.go files.
package oracle
