package render

import (
	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/stategrid"
)

// Render produces a grid.W x grid.H raster with cat's channel count:
// each output pixel is the per-channel arithmetic mean of
// pattern (0,0) over every pattern still possible at that cell. A cell
// with no surviving possibilities (a contradiction) is left zeroed.
// Complexity: O(W*H*P) worst case.
func Render(grid *stategrid.Grid, cat *pattern.Catalog) (*raster.Raster, error) {
	c := cat.Patterns[0].C
	out, err := raster.New(grid.W, grid.H, c)
	if err != nil {
		return nil, err
	}

	sum := make([]float64, c)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			for i := range sum {
				sum[i] = 0
			}
			var count int
			grid.Possible[y*grid.W+x].Iterate(func(k int) {
				px, _ := cat.Patterns[k].At(0, 0)
				for i, v := range px {
					sum[i] += float64(v)
				}
				count++
			})
			if count == 0 {
				continue
			}

			px := make([]byte, c)
			for i, s := range sum {
				px[i] = byte(s / float64(count))
			}
			if err := out.Set(x, y, px); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
