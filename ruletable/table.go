package ruletable

import (
	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/ruletable/bitset"
)

// Table is the adjacency rule table: Rules[i][k] is the bitset of pattern
// ids compatible with pattern i at Offsets()[k].
type Table struct {
	n       int
	offsets []Offset
	index   map[Offset]int
	Rules   [][]bitset.Set
}

// Offsets returns the canonical, deterministically-ordered offset list
// this table was built against (see Offsets(n)).
func (t *Table) Offsets() []Offset {
	return t.offsets
}

// OffsetIndex returns the position of δ within Offsets(), for callers that
// need to address Rules[i][...] directly.
func (t *Table) OffsetIndex(o Offset) (int, bool) {
	idx, ok := t.index[o]

	return idx, ok
}

// Build constructs the RuleTable for cat, testing every unordered pattern
// pair once (j ≥ i) against the full offset set and inserting both
// Rules[i][δ] and Rules[j][-δ] from a single compatibility check — the
// half-iteration with symmetric insertion halves the pair/offset work.
//
// Complexity: O(P²·|offsets|) pair/offset tests, each O(N²·C) to compare
// the overlapping crop.
func Build(cat *pattern.Catalog) (*Table, error) {
	if cat.P() == 0 {
		return nil, ErrEmptyCatalog
	}

	offs := Offsets(cat.N)
	idx := make(map[Offset]int, len(offs))
	for k, o := range offs {
		idx[o] = k
	}

	p := cat.P()
	rules := make([][]bitset.Set, p)
	for i := range rules {
		rules[i] = make([]bitset.Set, len(offs))
		for k := range rules[i] {
			rules[i][k] = bitset.New(p)
		}
	}

	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			for k, o := range offs {
				if !compatible(cat.Patterns[i], cat.Patterns[j], cat.N, o.DX, o.DY) {
					continue
				}
				rules[i][k].Set(j)
				negK := idx[o.Neg()]
				rules[j][negK].Set(i)
			}
		}
	}

	return &Table{n: cat.N, offsets: offs, index: idx, Rules: rules}, nil
}

// compatible reports whether two patterns may neighbour each other: overlay b
// shifted by (dx,dy) onto a; the two must agree on bytes in the
// overlapping rectangle. Because |dx|,|dy| ≤ n-1, the overlap rectangle is
// always non-empty.
// Complexity: O(N²·C).
func compatible(a, b *raster.Raster, n, dx, dy int) bool {
	xLo, xHi := overlapRange(n, dx)
	yLo, yHi := overlapRange(n, dy)

	for y := yLo; y <= yHi; y++ {
		for x := xLo; x <= xHi; x++ {
			pa, _ := a.At(x, y)
			pb, _ := b.At(x-dx, y-dy)
			if !bytesEqual(pa, pb) {
				return false
			}
		}
	}

	return true
}

// overlapRange returns the inclusive [lo,hi] range of coordinates along one
// axis shared between a pattern and its neighbour shifted by d on that axis.
func overlapRange(n, d int) (lo, hi int) {
	lo = 0
	if d > 0 {
		lo = d
	}
	hi = n - 1
	if d < 0 {
		hi = n - 1 + d
	}

	return lo, hi
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
