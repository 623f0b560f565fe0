// Package render turns solver state back into pixels: it reads a
// stategrid.Grid's surviving possibilities and produces an output raster
// by averaging, per cell, the top-left pixel of every pattern still
// possible there. A fully collapsed cell's average degenerates to its
// singleton pattern's own pixel — the canonical overlapping-model output
// rule — while an in-progress or contradicted cell renders a visual
// "superposition" of its surviving candidates.
package render
