package pattern

import (
	"fmt"
	"os"
	"strings"

	"github.com/jkuba/overlapwfc/raster"
)

// SavePreview writes a patterns preview sheet: a grid of the catalog's
// patterns, each scaled up by scale and separated by spacing pixels of
// zero-filled padding (black for RGB patterns, transparent for RGBA). Each pattern's id, frequency, and probability are written
// to a companion "<path>.txt" manifest in grid order.
//
// Complexity: O(P·N²·scale²).
func (cat *Catalog) SavePreview(path string, scale, spacing int) error {
	if scale <= 0 {
		scale = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	if len(cat.Patterns) == 0 {
		return nil
	}

	cols := gridCols(len(cat.Patterns))
	rows := (len(cat.Patterns) + cols - 1) / cols
	cellW := cat.N*scale + spacing
	cellH := cat.N*scale + spacing
	sheet, err := raster.New(cols*cellW+spacing, rows*cellH+spacing, cat.Patterns[0].C)
	if err != nil {
		return err
	}

	var manifest strings.Builder
	for i, p := range cat.Patterns {
		col, row := i%cols, i/cols
		scaled, err := p.ResizeNearest(cat.N*scale, cat.N*scale)
		if err != nil {
			return err
		}
		ox := spacing + col*cellW
		oy := spacing + row*cellH
		if err := blit(sheet, scaled, ox, oy); err != nil {
			return err
		}
		fmt.Fprintf(&manifest, "pattern %d: frequency=%d probability=%.6f\n", i, cat.Frequency[i], cat.Probability[i])
	}

	if err := sheet.Save(path); err != nil {
		return err
	}

	return os.WriteFile(path+".txt", []byte(manifest.String()), 0o644)
}

// blit copies src into dst with top-left corner (ox,oy).
func blit(dst, src *raster.Raster, ox, oy int) error {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			px, err := src.At(x, y)
			if err != nil {
				return err
			}
			if err := dst.Set(ox+x, oy+y, px); err != nil {
				return err
			}
		}
	}

	return nil
}

// gridCols picks a near-square column count for n patterns.
func gridCols(n int) int {
	c := 1
	for c*c < n {
		c++
	}

	return c
}
