package stategrid

import (
	"math"

	"github.com/jkuba/overlapwfc/ruletable/bitset"
)

// Unassigned marks a cell with no collapsed pattern id yet.
const Unassigned = -1

// Grid is the solver's state: a W×H array of P-bit possibility masks
// plus a parallel array of collapsed pattern ids, both stored flat and
// row-major.
//
// Invariant: if Collapsed[i] == k then
// Possible[i].Test(k) and Possible[i].OnesCount()==1; if Possible[i] is
// all-false the cell is in contradiction.
type Grid struct {
	W, H, P     int
	Possible    []bitset.Set
	Collapsed   []int
	Probability []float64
}

// New allocates a W×H grid over P patterns, every cell initialized to
// "all patterns possible" and uncollapsed (when p == 1, every cell is
// recorded as collapsed to pattern 0 instead).
// probability is shared by reference; Grid never mutates it.
// Complexity: O(W*H*P) time and memory.
func New(w, h, p int, probability []float64) (*Grid, error) {
	if w <= 0 || h <= 0 || p <= 0 {
		return nil, ErrInvalidDimensions
	}

	g := &Grid{W: w, H: h, P: p, Probability: probability}
	g.Possible = make([]bitset.Set, w*h)
	g.Collapsed = make([]int, w*h)
	for i := range g.Possible {
		g.Possible[i] = bitset.New(p)
		g.Possible[i].SetAll()
		g.Collapsed[i] = Unassigned
		// A single-pattern catalog leaves every cell a singleton from the
		// start; record it collapsed immediately so a P=1 run still ends
		// with every cell collapsed.
		if p == 1 {
			g.Collapsed[i] = 0
		}
	}

	return g, nil
}

// index computes the flat index for (x,y), or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (g *Grid) index(x, y int) (int, error) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0, ErrIndexOutOfBounds
	}

	return y*g.W + x, nil
}

// Wrap maps (x+dx, y+dy) onto the toroidal grid: the neighbour of (x,y)
// at offset (dx,dy) is
// ((x+dx) mod W, (y+dy) mod H), with no edge treated specially.
// Complexity: O(1).
func (g *Grid) Wrap(x, y, dx, dy int) (int, int) {
	nx := ((x+dx)%g.W + g.W) % g.W
	ny := ((y+dy)%g.H + g.H) % g.H

	return nx, ny
}

// IsCollapsed reports whether (x,y) already has a single collapsed pattern.
func (g *Grid) IsCollapsed(x, y int) (bool, error) {
	i, err := g.index(x, y)
	if err != nil {
		return false, err
	}

	return g.Collapsed[i] != Unassigned, nil
}

// Entropy computes the Shannon entropy of (x,y)'s possibility mask:
// H = ln(Σw) - (Σw·ln w)/Σw, over w = Probability[k] for k still possible.
// Returns 0 when Σw == 0 (a contradicted cell); a collapsed cell's single
// term also evaluates to 0.
// Complexity: O(P/64 + popcount).
func (g *Grid) Entropy(x, y int) (float64, error) {
	i, err := g.index(x, y)
	if err != nil {
		return 0, err
	}

	var sumW, sumWLogW float64
	g.Possible[i].Iterate(func(k int) {
		w := g.Probability[k]
		sumW += w
		sumWLogW += w * math.Log(w)
	})
	if sumW == 0 {
		return 0, nil
	}

	return math.Log(sumW) - sumWLogW/sumW, nil
}

// IsContradiction reports whether any cell's possibility mask is all-false.
// Complexity: O(W*H*P/64).
func (g *Grid) IsContradiction() bool {
	for i := range g.Possible {
		if g.Possible[i].IsZero() {
			return true
		}
	}

	return false
}

// Collapse reduces (x,y)'s mask to the singleton {k} and records k as its
// collapsed id.
// Complexity: O(P/64).
func (g *Grid) Collapse(x, y, k int) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.Possible[i].ClearAll()
	g.Possible[i].Set(k)
	g.Collapsed[i] = k

	return nil
}

// Intersect narrows (x,y)'s mask to mask ∧ allowed, reporting whether the
// mask actually changed and whether it is now a singleton. If it became a
// singleton, Collapsed[i] is set to the surviving id.
// Complexity: O(P/64).
func (g *Grid) Intersect(x, y int, allowed bitset.Set) (updated, nowSingleton bool, err error) {
	i, err := g.index(x, y)
	if err != nil {
		return false, false, err
	}

	before := g.Possible[i].Clone()
	g.Possible[i].And(allowed)
	updated = !before.Equal(g.Possible[i])

	if idx, ok := g.Possible[i].SingletonIndex(); ok {
		nowSingleton = true
		g.Collapsed[i] = idx
	}

	return updated, nowSingleton, nil
}

// Clone returns an independent deep copy of g, the unit of snapshot the
// Backtracker pushes and restores.
// Complexity: O(W*H*P/64).
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, P: g.P, Probability: g.Probability}
	out.Possible = make([]bitset.Set, len(g.Possible))
	for i := range g.Possible {
		out.Possible[i] = g.Possible[i].Clone()
	}
	out.Collapsed = make([]int, len(g.Collapsed))
	copy(out.Collapsed, g.Collapsed)

	return out
}

// Equal reports whether g and other hold identical dimensions, masks, and
// collapsed ids — used by tests comparing clones and backtracker
// snapshots against their source grid.
// Complexity: O(W*H*P/64).
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H || g.P != other.P {
		return false
	}
	for i := range g.Collapsed {
		if g.Collapsed[i] != other.Collapsed[i] {
			return false
		}
	}
	for i := range g.Possible {
		if !g.Possible[i].Equal(other.Possible[i]) {
			return false
		}
	}

	return true
}
