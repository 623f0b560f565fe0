package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/ruletable"
	"github.com/jkuba/overlapwfc/solver"
)

func solidExemplar(t *testing.T, w, h int, rgb [3]byte) *raster.Raster {
	t.Helper()
	r, err := raster.New(w, h, 3)
	require.NoError(t, err, "raster.New")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, r.Set(x, y, rgb[:]), "Set")
		}
	}

	return r
}

// pixelExemplar builds a raster from a grid of grayscale values, one byte
// per pixel replicated across all three channels.
func pixelExemplar(t *testing.T, rows [][]byte) *raster.Raster {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	r, err := raster.New(w, h, 3)
	require.NoError(t, err, "raster.New")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := rows[y][x]
			require.NoError(t, r.Set(x, y, []byte{v, v, v}), "Set")
		}
	}

	return r
}

func analyze(t *testing.T, exemplar *raster.Raster, n int) (*pattern.Catalog, *ruletable.Table) {
	t.Helper()
	cat, err := pattern.Analyze(exemplar, n, false, false)
	require.NoError(t, err, "Analyze")
	tbl, err := ruletable.Build(cat)
	require.NoError(t, err, "Build")

	return cat, tbl
}

func TestSolveSolidExemplarReachesSolutionWithEveryCellCollapsed(t *testing.T) {
	cat, tbl := analyze(t, solidExemplar(t, 4, 4, [3]byte{10, 20, 30}), 3)

	s, err := solver.New(cat, tbl, 5, 5)
	require.NoError(t, err, "New")
	status, err := s.Run(context.Background())
	require.NoError(t, err, "Run")
	assert.Equal(t, solver.Solution, status, "a solid exemplar must always solve")
	for i, c := range s.Grid.Collapsed {
		assert.Equal(t, 0, c, "cell %d must collapse to the only pattern", i)
	}
}

// incompatibleCatalog builds a two-pattern catalog where no pattern is
// compatible with itself or the other at any offset: all eight pixel
// values across both 2x2 patterns are distinct, so the overlap-equality
// test fails for every pair and offset.
func incompatibleCatalog(t *testing.T) (*pattern.Catalog, *ruletable.Table) {
	t.Helper()

	mk := func(v0, v1, v2, v3 byte) *raster.Raster {
		r, err := raster.New(2, 2, 3)
		require.NoError(t, err, "raster.New")
		require.NoError(t, r.Set(0, 0, []byte{v0, v0, v0}), "Set")
		require.NoError(t, r.Set(1, 0, []byte{v1, v1, v1}), "Set")
		require.NoError(t, r.Set(0, 1, []byte{v2, v2, v2}), "Set")
		require.NoError(t, r.Set(1, 1, []byte{v3, v3, v3}), "Set")

		return r
	}

	cat := &pattern.Catalog{
		N:           2,
		Patterns:    []*raster.Raster{mk(10, 20, 30, 40), mk(50, 60, 70, 80)},
		Frequency:   []int{1, 1},
		Probability: []float64{0.5, 0.5},
	}
	tbl, err := ruletable.Build(cat)
	require.NoError(t, err, "Build")

	return cat, tbl
}

func TestSolveContradictionWithoutBacktrackingTerminates(t *testing.T) {
	cat, tbl := incompatibleCatalog(t)
	s, err := solver.New(cat, tbl, 3, 3)
	require.NoError(t, err, "New")
	status, err := s.Run(context.Background())
	require.NoError(t, err, "Run")
	assert.Equal(t, solver.Contradiction, status, "first collapse must propagate to a fatal contradiction")
}

func TestSolveContradictionExhaustsBacktracker(t *testing.T) {
	cat, tbl := incompatibleCatalog(t)
	s, err := solver.New(cat, tbl, 3, 3, solver.WithBacktracking(5, 3))
	require.NoError(t, err, "New")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	status, err := s.Run(ctx)
	require.NoError(t, err, "Run must terminate on its own, not via the timeout")
	assert.Equal(t, solver.Contradiction, status, "backtracker must exhaust its retries and report Contradiction")
	// One forward collapse plus exactly maxIterations redraws of the sole
	// snapshot; the next draw pops it, finds the stack empty, and gives up.
	assert.Equal(t, 4, s.Iteration, "retry budget must bound the redraw count")
}

func TestSolveCheckerboardExemplar(t *testing.T) {
	const b, w = 0, 255
	exemplar := pixelExemplar(t, [][]byte{
		{b, w, b, w},
		{w, b, w, b},
		{b, w, b, w},
		{w, b, w, b},
	})
	cat, tbl := analyze(t, exemplar, 2)
	require.Equal(t, 2, cat.P(), "a checkerboard yields exactly the two phase patterns")

	s, err := solver.New(cat, tbl, 4, 4, solver.WithSeed(7))
	require.NoError(t, err, "New")
	status, err := s.Run(context.Background())
	require.NoError(t, err, "Run")
	require.Equal(t, solver.Solution, status, "checkerboard constraints are globally satisfiable")

	// The output must alternate phases on cell parity; either of the two
	// colourings is acceptable.
	base := s.Grid.Collapsed[0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := base
			if (x+y)%2 == 1 {
				want = 1 - base
			}
			assert.Equal(t, want, s.Grid.Collapsed[y*4+x], "cell (%d,%d) breaks the checker parity", x, y)
		}
	}
}

func TestSolveStripedExemplarKeepsStripeOrientation(t *testing.T) {
	const r, g, b = 10, 20, 30
	exemplar := pixelExemplar(t, [][]byte{
		{r, r},
		{g, g},
		{b, b},
		{r, r},
	})
	cat, tbl := analyze(t, exemplar, 2)
	require.Equal(t, 3, cat.P(), "three vertically adjacent stripe windows")

	s, err := solver.New(cat, tbl, 6, 6, solver.WithSeed(11))
	require.NoError(t, err, "New")
	status, err := s.Run(context.Background())
	require.NoError(t, err, "Run")
	require.Equal(t, solver.Solution, status, "stripe constraints wrap cleanly on a height-6 torus")

	// Horizontal neighbours must share a phase and vertical neighbours must
	// follow the exemplar's stripe sequence, so every row is uniform and
	// the row sequence steps through the stripes' succession rule.
	down, ok := tbl.OffsetIndex(ruletable.Offset{DX: 0, DY: 1})
	require.True(t, ok, "offset (0,1) must exist for N=2")
	for y := 0; y < 6; y++ {
		row := s.Grid.Collapsed[y*6]
		for x := 1; x < 6; x++ {
			assert.Equal(t, row, s.Grid.Collapsed[y*6+x], "row %d must be a single stripe phase", y)
		}
		next := s.Grid.Collapsed[((y+1)%6)*6]
		assert.True(t, tbl.Rules[row][down].Test(next), "row %d -> %d must follow the stripe succession", y, y+1)
	}
}

func TestSeedStabilityProducesIdenticalOutput(t *testing.T) {
	cat, tbl := analyze(t, solidExemplar(t, 4, 4, [3]byte{1, 2, 3}), 2)

	run := func() []int {
		s, err := solver.New(cat, tbl, 6, 6, solver.WithSeed(42))
		require.NoError(t, err, "New")
		_, err = s.Run(context.Background())
		require.NoError(t, err, "Run")

		return s.Grid.Collapsed
	}

	assert.Equal(t, run(), run(), "identical seed and config must produce an identical collapsedMap")
}

func TestNewRejectsInvalidOutputSize(t *testing.T) {
	cat, tbl := analyze(t, solidExemplar(t, 3, 3, [3]byte{1, 1, 1}), 2)
	_, err := solver.New(cat, tbl, 0, 5)
	assert.ErrorIs(t, err, solver.ErrInvalidOutputSize, "zero output width must be rejected at construction")
}
