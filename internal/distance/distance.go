// Package distance computes evolutionary distances between sequences and
// assembles all-pairs distance matrices.
//
// The distance is alignment-free: sites are compared positionally over the
// leading min(len1, len2) residues, ambiguous sites are excluded, and the
// raw p-distance is transformed with the Jukes-Cantor correction.
package distance

import "math"

// MaxDistance is the saturation cap applied to corrected distances.
const MaxDistance = 3.0

// jcLimit is the p-distance at which the Jukes-Cantor correction diverges.
const jcLimit = 0.75

// PDistance returns the fraction of differing, valid sites between two
// residue strings. Sites where either side carries the ambiguity symbol
// are excluded from numerator and denominator. When no valid site exists
// the pair is degenerate and the maximum p-distance 1.0 is returned.
func PDistance(res1, res2 string, ambiguous1, ambiguous2 byte) float64 {
	n := len(res1)
	if len(res2) < n {
		n = len(res2)
	}

	valid, diffs := 0, 0
	for i := 0; i < n; i++ {
		if res1[i] == ambiguous1 || res2[i] == ambiguous2 {
			continue
		}
		valid++
		if res1[i] != res2[i] {
			diffs++
		}
	}

	if valid == 0 {
		// Degenerate pair: resolve locally to the maximum p-distance
		return 1.0
	}
	return float64(diffs) / float64(valid)
}

// JukesCantor transforms a p-distance into an estimated substitution
// distance: d = -3/4 * ln(1 - 4/3 * p). Distances at or beyond the 0.75
// divergence limit saturate at MaxDistance.
func JukesCantor(p float64) float64 {
	if p >= jcLimit {
		return MaxDistance
	}
	d := -0.75 * math.Log(1.0-4.0/3.0*p)
	if d < 0 {
		return 0
	}
	if d > MaxDistance {
		return MaxDistance
	}
	return d
}
