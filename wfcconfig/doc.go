// Package wfcconfig collects the pipeline's tunables — pattern analysis,
// solving, backtracking, and output — into validated config structs: a
// zero-value-safe Config built by Default and mutated by a chain of Option
// functions, with invalid combinations surfaced as a sentinel error at
// Validate time rather than panicking mid-pipeline.
package wfcconfig
