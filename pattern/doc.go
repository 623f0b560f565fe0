// Package pattern analyzes an exemplar raster into a catalog: it
// enumerates the distinct N×N windows ("patterns") of the exemplar, their
// transform-inclusive emission frequencies, and the resulting probability
// vector used throughout the solver.
//
// Distinct patterns are deduplicated by exact byte equality and assigned
// stable, increasing integer ids starting at 0; frequency accumulates one
// count per window×transform emission, so a window appearing k times
// contributes k to its frequency.
package pattern
