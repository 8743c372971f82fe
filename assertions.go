package brownham

import (
	"math"
	"testing"
)

// Statistical assertion helpers for sampler tests. Sampling is random, so
// these check properties (bounds, tolerance bands) rather than exact values;
// tests using them must seed their sources for reproducibility.

// AssertSamplesWithin verifies every sample lies in the half-open interval
// [lo, hi).
func AssertSamplesWithin(t *testing.T, samples []float64, lo, hi float64) {
	t.Helper()

	for i, s := range samples {
		if s < lo || s >= hi {
			t.Fatalf("sample %d out of bounds: %g not in [%g, %g)", i, s, lo, hi)
		}
	}
	t.Logf("✓ All %d samples within [%g, %g)", len(samples), lo, hi)
}

// AssertMeanNear verifies the empirical mean of samples is within tol of want.
func AssertMeanNear(t *testing.T, samples []float64, want, tol float64) {
	t.Helper()

	mean, _ := Summarize(samples)
	if math.Abs(mean-want) > tol {
		t.Errorf("empirical mean %g outside tolerance: want %g ± %g", mean, want, tol)
		return
	}
	t.Logf("✓ Empirical mean %g within %g of %g (n=%d)", mean, tol, want, len(samples))
}

// AssertSplitBalance verifies the fraction of samples below splitPoint stays
// within tol of wantFraction. For an equal-weight mixture of two
// well-separated components, the midpoint between the component means splits
// the draws roughly in half.
func AssertSplitBalance(t *testing.T, samples []float64, splitPoint, wantFraction, tol float64) {
	t.Helper()

	if len(samples) == 0 {
		t.Fatal("no samples to split")
	}
	below := 0
	for _, s := range samples {
		if s < splitPoint {
			below++
		}
	}
	fraction := float64(below) / float64(len(samples))
	if math.Abs(fraction-wantFraction) > tol {
		t.Errorf("split balance off: %.4f of samples below %g (want %.4f ± %.4f)",
			fraction, splitPoint, wantFraction, tol)
		return
	}
	t.Logf("✓ Split balance: %.4f of %d samples below %g (want %.4f ± %.4f)",
		fraction, len(samples), splitPoint, wantFraction, tol)
}
