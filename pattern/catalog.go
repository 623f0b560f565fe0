package pattern

import (
	"github.com/jkuba/overlapwfc/raster"
)

// Catalog is the result of analyzing an exemplar: the distinct N×N patterns
// found, their frequencies, and the derived probability vector.
//
// Invariant: no two entries in Patterns share byte content; Patterns[i]'s
// index i is its stable pattern id, used throughout ruletable and
// stategrid.
type Catalog struct {
	N           int
	Patterns    []*raster.Raster
	Frequency   []int
	Probability []float64
}

// index maps a pattern's byte content to its assigned id, used during
// analysis to deduplicate candidate windows in O(1) amortized time.
type index struct {
	byKey map[string]int
}

func newIndex() *index {
	return &index{byKey: make(map[string]int)}
}

// key returns a string uniquely identifying a pattern's byte content,
// suitable as a map key for exact-byte-equality deduplication.
func key(p *raster.Raster) string {
	return string(p.Pix)
}

// Analyze extracts the pattern catalog from exemplar: every N×N window,
// plus (if enabled) its mirror and rotation transforms,
// is deduplicated by exact byte equality into a stable id space, with
// frequency accumulated over every emission.
//
// Complexity: O(Wᵢ·Hᵢ·t) windows (t = number of enabled transforms), each
// O(N²·C) to extract and hash.
func Analyze(exemplar *raster.Raster, n int, allowRotate, allowFlip bool) (*Catalog, error) {
	if n <= 0 {
		return nil, ErrInvalidPatternSize
	}
	if exemplar.W < n || exemplar.H < n {
		return nil, ErrExemplarTooSmall
	}

	cat := &Catalog{N: n}
	idx := newIndex()

	for y := 0; y <= exemplar.H-n; y++ {
		for x := 0; x <= exemplar.W-n; x++ {
			base, err := exemplar.Crop(x, y, n, n)
			if err != nil {
				return nil, err
			}
			for _, variant := range transforms(base, allowRotate, allowFlip) {
				cat.addPattern(idx, variant)
			}
		}
	}

	cat.calculateProbabilities()

	return cat, nil
}

// addPattern records one emission of p: if p's byte content has not been
// seen before it receives the next stable id, otherwise its existing
// frequency is incremented.
// Complexity: O(N²·C) for the hash key plus O(1) amortized map lookup.
func (cat *Catalog) addPattern(idx *index, p *raster.Raster) {
	k := key(p)
	if id, ok := idx.byKey[k]; ok {
		cat.Frequency[id]++

		return
	}
	id := len(cat.Patterns)
	idx.byKey[k] = id
	cat.Patterns = append(cat.Patterns, p)
	cat.Frequency = append(cat.Frequency, 1)
}

// transforms returns base plus its enabled mirror/rotation variants, each
// an independent candidate. Duplicate variants (e.g. a symmetric pattern's rotation
// equalling its original) are still emitted; addPattern's dedup handles
// collapsing them into a single id with the correct accumulated frequency.
func transforms(base *raster.Raster, allowRotate, allowFlip bool) []*raster.Raster {
	out := []*raster.Raster{base}
	if allowFlip {
		out = append(out, base.MirrorX(), base.MirrorY())
	}
	if allowRotate {
		out = append(out, base.Rotate90(), base.Rotate180(), base.Rotate270())
	}

	return out
}

// calculateProbabilities derives Probability[i] = Frequency[i] / ΣFrequency.
// Complexity: O(P).
func (cat *Catalog) calculateProbabilities() {
	sum := 0
	for _, f := range cat.Frequency {
		sum += f
	}
	cat.Probability = make([]float64, len(cat.Frequency))
	if sum == 0 {
		return
	}
	for i, f := range cat.Frequency {
		cat.Probability[i] = float64(f) / float64(sum)
	}
}

// P returns the number of distinct patterns in the catalog.
func (cat *Catalog) P() int {
	return len(cat.Patterns)
}
