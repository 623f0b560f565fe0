// Package backtrack provides contradiction recovery: a bounded LIFO stack
// of solver snapshots the solver can restore and redraw from.
//
// A snapshot is pushed before every collapse; on contradiction the solver
// restores a copy of the most recent snapshot and redraws from it, up to a
// per-level retry budget (maxIterations), after which that level is popped
// and the next one down is restored. At most maxDepth levels are held; the
// oldest is evicted when a push exceeds that. Once the stack runs empty the
// generation has failed and no further recovery is attempted.
//
// While the solver is actively recovering ("backtracking mode") snapshots
// taken during forward progress are diverted onto a secondary buffered
// stack rather than the main one. They are merged back in only once a
// recovery attempt survives its first iteration; a redraw that
// contradicts again has its buffered snapshot discarded instead, so
// repeated failures drain the level's retry budget rather than refilling
// it, and an unsatisfiable instance runs the stack empty.
package backtrack
