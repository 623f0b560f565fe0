package solver

import "context"

// Run drives the observe/propagate main loop until the Solver reaches
// Solution or Contradiction, or ctx is cancelled. Safe to call only once
// per Solver; cancellation is checked at the iteration boundary, the
// loop's only natural checkpoint.
func (s *Solver) Run(ctx context.Context) (Status, error) {
	s.Status = Running

	for s.Status == Running {
		select {
		case <-ctx.Done():
			return s.Status, ctx.Err()
		default:
		}

		p, collapsed, err := s.observe()
		if err != nil {
			return s.Status, err
		}
		if s.Status != Running {
			break
		}
		if collapsed {
			if err := s.propagate(p); err != nil {
				return s.Status, err
			}
			s.Iteration++
			s.opts.OnIteration(s.Iteration, s.Status)
		}
	}

	return s.Status, nil
}
