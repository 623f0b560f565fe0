package solver

// Point is a grid coordinate pair, used as Observe's return value and
// Propagate's worklist entry.
type Point struct {
	X, Y int
}

// observe performs one observation step. It returns the collapsed point
// and true when a collapse happened (propagate should run from it), or
// false when the Solver's Status was just finalised (Solution or
// Contradiction) or when a backtracking restore consumed this call without
// a fresh collapse.
//
// The contradiction check runs before the recovery-complete check: a
// redraw that failed again must be charged against the failing level's
// retry budget, not merged into the main stack as if it had made
// progress. Its buffered snapshot is discarded, so the budget drains and
// an unsatisfiable instance terminates once every level is exhausted.
func (s *Solver) observe() (Point, bool, error) {
	if s.Grid.IsContradiction() {
		if s.opts.BacktrackEnabled && s.bt.AbleToBacktrack() {
			if s.bt.IsBacktracking() {
				s.bt.DiscardBuffered()
			} else {
				s.bt.SetBacktracking(true)
			}
			s.bt.SetLastIteration(s.Iteration + 1)
			restored, err := s.bt.Draw()
			if err != nil {
				s.Status = Contradiction

				return Point{}, false, nil
			}
			s.Grid = restored

			return Point{}, false, nil
		}

		s.Status = Contradiction

		return Point{}, false, nil
	}

	if s.bt.IsBacktracking() && s.bt.LastIteration() == s.Iteration {
		s.bt.Merge()
	}

	p, found := s.minEntropyCell()
	if !found {
		s.Status = Solution

		return Point{}, false, nil
	}

	if s.opts.BacktrackEnabled {
		if s.bt.IsBacktracking() {
			s.bt.PushBacktracked(s.Grid)
		} else {
			s.bt.Push(s.Grid)
		}
	}

	// Grid stores Possible row-major (see stategrid.Grid's doc comment);
	// Observe reads it directly here to build the candidate id list.
	ids := make([]int, 0, s.Catalog.P())
	s.Grid.Possible[p.Y*s.Grid.W+p.X].Iterate(func(k int) { ids = append(ids, k) })

	k := categoricalDraw(s.rng, ids, s.Catalog.Probability)
	if err := s.Grid.Collapse(p.X, p.Y, k); err != nil {
		return Point{}, false, err
	}

	return p, true, nil
}

// minEntropyCell finds the uncollapsed cell with minimum strictly-positive
// entropy, breaking ties uniformly at random among equal-entropy
// candidates.
// Complexity: O(W*H*P/64).
func (s *Solver) minEntropyCell() (Point, bool) {
	const noMin = -1.0

	best := noMin
	var candidates []Point

	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			collapsed, _ := s.Grid.IsCollapsed(x, y)
			if collapsed {
				continue
			}
			h, _ := s.Grid.Entropy(x, y)
			if h <= 0 {
				continue
			}
			switch {
			case best == noMin || h < best:
				best = h
				candidates = candidates[:0]
				candidates = append(candidates, Point{X: x, Y: y})
			case h == best:
				candidates = append(candidates, Point{X: x, Y: y})
			}
		}
	}

	if len(candidates) == 0 {
		return Point{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	return candidates[uniformChoice(s.rng, len(candidates))], true
}
