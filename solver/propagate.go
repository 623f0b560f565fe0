package solver

import "github.com/jkuba/overlapwfc/ruletable/bitset"

// propagate runs worklist AC-3-style constraint propagation from the
// just-collapsed point p: a FIFO queue plus visited set, with the offset
// list standing in for a fixed neighbourhood.
// Complexity: O(|queue| * |offsets| * P/64) in the worst case.
func (s *Solver) propagate(p Point) error {
	queue := []Point{p}
	visited := map[Point]bool{p: true}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		ci := c.Y*s.Grid.W + c.X
		for k, offset := range s.Rules.Offsets() {
			nx, ny := s.Grid.Wrap(c.X, c.Y, offset.DX, offset.DY)
			n := Point{X: nx, Y: ny}

			collapsed, err := s.Grid.IsCollapsed(nx, ny)
			if err != nil {
				return err
			}
			if collapsed {
				continue
			}

			allowed := bitset.New(s.Catalog.P())
			s.Grid.Possible[ci].Iterate(func(i int) {
				allowed.Or(s.Rules.Rules[i][k])
			})

			updated, _, err := s.Grid.Intersect(nx, ny, allowed)
			if err != nil {
				return err
			}
			if updated && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return nil
}
