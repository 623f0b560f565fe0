// Package solver implements the constraint-solving loop: the observe/propagate
// main loop that drives a stategrid.Grid from "all patterns possible" to
// either a full collapse (Solution) or an unrecoverable Contradiction.
//
// Observe picks the minimum-entropy uncollapsed cell, breaks ties uniformly
// at random, and collapses it to a pattern drawn from the categorical
// distribution of its surviving patterns' frequencies. Propagate then
// runs a FIFO worklist that intersects every neighbour's mask against the
// union of compatible rules induced by the newly-narrowed cell, until the
// queue drains.
//
// The grid topology is toroidal: the neighbour at (x,y)+(dx,dy) always
// wraps, with no edge treated specially.
package solver
