package render_test

import (
	"testing"

	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/render"
	"github.com/jkuba/overlapwfc/stategrid"
)

func TestRenderCollapsedCellEqualsPatternPixel(t *testing.T) {
	p0, _ := raster.New(2, 2, 3)
	_ = p0.Set(0, 0, []byte{10, 20, 30})
	p1, _ := raster.New(2, 2, 3)
	_ = p1.Set(0, 0, []byte{200, 210, 220})

	cat := &pattern.Catalog{Patterns: []*raster.Raster{p0, p1}, Probability: []float64{0.5, 0.5}}
	grid, err := stategrid.New(1, 1, 2, cat.Probability)
	if err != nil {
		t.Fatalf("stategrid.New: %v", err)
	}
	if err := grid.Collapse(0, 0, 1); err != nil {
		t.Fatalf("Collapse: %v", err)
	}

	out, err := render.Render(grid, cat)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	px, err := out.At(0, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	want := []byte{200, 210, 220}
	for i, v := range want {
		if px[i] != v {
			t.Errorf("channel %d: expected %d, got %d", i, v, px[i])
		}
	}
}

func TestRenderAveragesSurvivingCandidates(t *testing.T) {
	p0, _ := raster.New(1, 1, 3)
	_ = p0.Set(0, 0, []byte{0, 0, 0})
	p1, _ := raster.New(1, 1, 3)
	_ = p1.Set(0, 0, []byte{100, 100, 100})

	cat := &pattern.Catalog{Patterns: []*raster.Raster{p0, p1}, Probability: []float64{0.5, 0.5}}
	grid, _ := stategrid.New(1, 1, 2, cat.Probability)

	out, err := render.Render(grid, cat)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	px, _ := out.At(0, 0)
	for _, v := range px {
		if v != 50 {
			t.Errorf("expected averaged channel value 50, got %d", v)
		}
	}
}

func TestRenderZeroesContradictedCell(t *testing.T) {
	p0, _ := raster.New(1, 1, 3)
	_ = p0.Set(0, 0, []byte{99, 99, 99})

	cat := &pattern.Catalog{Patterns: []*raster.Raster{p0}, Probability: []float64{1.0}}
	grid, _ := stategrid.New(1, 1, 1, cat.Probability)
	grid.Possible[0].ClearAll()

	out, err := render.Render(grid, cat)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	px, _ := out.At(0, 0)
	for _, v := range px {
		if v != 0 {
			t.Errorf("expected zeroed pixel for contradicted cell, got %d", v)
		}
	}
}
