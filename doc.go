// Package overlapwfc implements the overlapping-model Wave Function Collapse
// (WFC) procedural generation algorithm: given a small exemplar raster image,
// it produces a larger raster image whose every N×N window reproduces one
// found in the exemplar (modulo configured reflections and rotations), with
// the global frequency of windows approximating the exemplar's.
//
// The algorithm is organized as a small pipeline of subpackages:
//
//	raster/     — load/save PNG, crop, mirror, rotate, nearest-neighbour resize
//	pattern/    — extract distinct N×N windows + frequencies from the exemplar
//	ruletable/  — per-pattern, per-offset compatibility bitsets
//	stategrid/  — the per-cell possibility bitset grid and entropy queries
//	solver/     — the observe/propagate constraint-solving loop
//	backtrack/  — bounded snapshot stack for contradiction recovery
//	render/     — turn a solved (or partially solved) grid back into a raster
//	wfcconfig/  — configuration structs and validation
//	wfclog/     — structured run-event logging
//
// A full run wires these in sequence: an exemplar raster is analyzed into a
// pattern.Catalog, from which a ruletable.Table is built; a solver.Solver
// owns a stategrid.Grid initialized to "everything possible everywhere" and
// drives Observe/Propagate until the grid is fully collapsed or a cell's
// possibility set empties out; render.Render turns the final grid into the
// output raster.
//
//	go get github.com/jkuba/overlapwfc
package overlapwfc
