// Package ruletable builds the adjacency rule table: for every ordered
// pair (pattern i, offset δ), the set of patterns j that may sit at offset
// δ from i, stored as one P-bit bitset.Set per (pattern, offset) cell.
//
// Construction tests every unordered pair once (j ≥ i) and inserts both
// Rules[i][δ] and Rules[j][-δ] from a single compatibility check, halving
// the pairwise work.
package ruletable
