package backtrack

import "github.com/jkuba/overlapwfc/stategrid"

// level pairs a cloned snapshot with its remaining redraw budget.
type level struct {
	snapshot *stategrid.Grid
	retries  int
}

// Backtracker is a bounded LIFO (deque) of (snapshot, retries) entries. The "front" of the deque is the most recently pushed entry — the
// one Draw serves from and the one new pushes are compared against.
//
// A level starts with retries = maxIterations. Each Draw while the front
// still has retries > 0 decrements it and returns another copy of the same
// snapshot, letting the Solver redraw a different random collapse at an
// unchanged pre-collapse state. Once a level's retries reach 0 it is
// popped and the next level down becomes the new front.
type Backtracker struct {
	maxDepth      int
	maxIterations int
	stack         []*level
	buffer        []*level
	backtracking  bool
	lastIteration int
}

// New builds a Backtracker bounded to maxDepth stacked snapshots, each
// redrawable up to maxIterations times before being discarded.
func New(maxDepth, maxIterations int) *Backtracker {
	return &Backtracker{maxDepth: maxDepth, maxIterations: maxIterations}
}

// Push clones snapshot and inserts it at the front of the main stack with a
// fresh retries budget. If this exceeds maxDepth, the oldest entry (the
// back) is dropped. Push never fails — capacity is enforced by eviction,
// not rejection.
// Complexity: O(1) plus the cost of Grid.Clone.
func (b *Backtracker) Push(snapshot *stategrid.Grid) {
	b.stack = append(b.stack, &level{snapshot: snapshot.Clone(), retries: b.maxIterations})
	if len(b.stack) > b.maxDepth {
		b.stack = b.stack[1:]
	}
}

// PushBacktracked buffers a clone of snapshot on the secondary stack used
// while backtracking mode is active, subject to the same maxDepth eviction
// policy. Buffered entries are folded into the main stack by Merge.
func (b *Backtracker) PushBacktracked(snapshot *stategrid.Grid) {
	b.buffer = append(b.buffer, &level{snapshot: snapshot.Clone(), retries: b.maxIterations})
	if len(b.buffer) > b.maxDepth {
		b.buffer = b.buffer[1:]
	}
}

// Merge moves every buffered entry onto the main stack, in push order (via
// Push, so each re-enters with a fresh retries budget and the usual
// eviction policy), clears the buffer, and exits backtracking mode. Only
// called once a recovery attempt has made it past the failure point
// without a fresh contradiction.
func (b *Backtracker) Merge() {
	for _, lvl := range b.buffer {
		b.Push(lvl.snapshot)
	}
	b.buffer = b.buffer[:0]
	b.backtracking = false
}

// DiscardBuffered drops every entry buffered since backtracking mode
// began. Called when a redraw made while recovering contradicts again:
// the buffered pre-collapse state is the same snapshot the next Draw
// restores, and merging it would hand the failing level a fresh retries
// budget on every attempt, so its draws would never exhaust.
func (b *Backtracker) DiscardBuffered() {
	b.buffer = b.buffer[:0]
}

// Draw serves a recovery snapshot: if the front
// entry still has retries remaining, decrement and return a copy of it. If
// the front is exhausted (retries == 0), pop it and return a copy of the
// new front without decrementing — that level's own first redraw instead
// consumes a retry on its own next Draw. Returns ErrExhausted if the stack
// is, or becomes, empty.
// Complexity: O(1) plus the cost of Grid.Clone.
func (b *Backtracker) Draw() (*stategrid.Grid, error) {
	if len(b.stack) == 0 {
		return nil, ErrExhausted
	}
	front := b.stack[len(b.stack)-1]
	if front.retries > 0 {
		front.retries--

		return front.snapshot.Clone(), nil
	}

	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) == 0 {
		return nil, ErrExhausted
	}
	newFront := b.stack[len(b.stack)-1]

	return newFront.snapshot.Clone(), nil
}

// AbleToBacktrack reports whether Draw can currently serve a snapshot.
func (b *Backtracker) AbleToBacktrack() bool {
	return len(b.stack) > 0
}

// Depth reports the number of snapshots currently held on the main stack.
func (b *Backtracker) Depth() int {
	return len(b.stack)
}

// SetBacktracking toggles backtracking mode; while it is set the solver
// sends its snapshots to PushBacktracked instead of Push (see the package
// doc). Push itself always targets the main stack.
func (b *Backtracker) SetBacktracking(v bool) {
	b.backtracking = v
}

// IsBacktracking reports the current mode.
func (b *Backtracker) IsBacktracking() bool {
	return b.backtracking
}

// SetLastIteration records the solver iteration at which the current
// backtracking episode should end.
func (b *Backtracker) SetLastIteration(i int) {
	b.lastIteration = i
}

// LastIteration returns the value last set by SetLastIteration.
func (b *Backtracker) LastIteration() int {
	return b.lastIteration
}
