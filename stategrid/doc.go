// Package stategrid holds the solver's mutable state: the fixed W×H grid
// of per-cell possibility bitsets and collapsed-pattern ids, plus entropy
// queries. Both planes are stored flat and row-major — a grid of
// bitset.Set masks and a parallel []int plane of collapsed ids.
package stategrid
