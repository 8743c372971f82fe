package brownham

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func draw(d Dist, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = d.Rand()
	}
	return samples
}

// TestUniform_BoundsAndMean verifies 100,000 draws all land in [lo, hi) and
// their empirical mean approaches (lo+hi)/2.
func TestUniform_BoundsAndMean(t *testing.T) {
	const lo, hi = DefaultGammaUniformMin, DefaultGammaUniformMax

	u, err := NewUniform(lo, hi, NewSource(1))
	if err != nil {
		t.Fatalf("NewUniform: %v", err)
	}

	samples := draw(u, 100000)
	AssertSamplesWithin(t, samples, lo, hi)
	// Standard error is (hi-lo)/sqrt(12n) ≈ 9.1e-5; 5e-4 is a >5σ band.
	AssertMeanNear(t, samples, (lo+hi)/2, 5e-4)
}

func TestConstant_AlwaysValue(t *testing.T) {
	c := Constant{Value: DefaultB}
	for i := 0; i < 1000; i++ {
		if got := c.Rand(); got != DefaultB {
			t.Fatalf("draw %d: got %g, want %g", i, got, DefaultB)
		}
	}
}

// TestGaussian_Moments verifies the sample mean and standard deviation of a
// Gaussian track its parameters.
func TestGaussian_Moments(t *testing.T) {
	const mu, sigma = DefaultRsFirstMean, DefaultRsFirstStddev

	g, err := NewGaussian(mu, sigma, NewSource(2))
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}

	samples := draw(g, 100000)
	AssertMeanNear(t, samples, mu, 6*sigma/math.Sqrt(100000))

	if sd := stat.StdDev(samples, nil); math.Abs(sd-sigma)/sigma > 0.02 {
		t.Errorf("sample stddev %g departs from %g by more than 2%%", sd, sigma)
	}
}

// TestMixture_EqualBlend verifies an equal-weight mixture of two separated
// Gaussians splits its draws evenly across the midpoint and blends the means.
func TestMixture_EqualBlend(t *testing.T) {
	src := NewSource(3)
	a, _ := NewGaussian(DefaultRsFirstMean, DefaultRsFirstStddev, src)
	b, _ := NewGaussian(DefaultRsSecondMean, DefaultRsSecondStddev, src)

	m, err := NewMixture(a, b, 0.5, src)
	if err != nil {
		t.Fatalf("NewMixture: %v", err)
	}

	samples := draw(m, 100000)

	// Components sit 10σ apart, so the midpoint attributes draws almost
	// perfectly; the binomial standard error at n=100k is 0.0016.
	midpoint := (DefaultRsFirstMean + DefaultRsSecondMean) / 2
	AssertSplitBalance(t, samples, midpoint, 0.5, 0.01)

	blendMean := 0.5*DefaultRsFirstMean + 0.5*DefaultRsSecondMean
	AssertMeanNear(t, samples, blendMean, 2e-10)
}

// TestMixture_DegenerateWeights verifies weight 1 draws only from the first
// component and weight 0 only from the second.
func TestMixture_DegenerateWeights(t *testing.T) {
	src := NewSource(4)
	a := Constant{Value: 1}
	b := Constant{Value: 2}

	allA, err := NewMixture(a, b, 1, src)
	if err != nil {
		t.Fatalf("NewMixture(w=1): %v", err)
	}
	for i := 0; i < 1000; i++ {
		if got := allA.Rand(); got != 1 {
			t.Fatalf("weight 1 drew from second component: %g", got)
		}
	}

	allB, err := NewMixture(a, b, 0, src)
	if err != nil {
		t.Fatalf("NewMixture(w=0): %v", err)
	}
	for i := 0; i < 1000; i++ {
		if got := allB.Rand(); got != 2 {
			t.Fatalf("weight 0 drew from first component: %g", got)
		}
	}
}

func TestDistConstructors_RejectInvalidParameters(t *testing.T) {
	src := NewSource(5)

	if _, err := NewUniform(0.25, 0.15, src); err == nil {
		t.Error("NewUniform accepted min > max")
	}
	if _, err := NewGaussian(0, -1, src); err == nil {
		t.Error("NewGaussian accepted negative stddev")
	}
	if _, err := NewMixture(Constant{}, Constant{}, 1.5, src); err == nil {
		t.Error("NewMixture accepted weight > 1")
	}
	if _, err := NewMixture(Constant{}, Constant{}, -0.1, src); err == nil {
		t.Error("NewMixture accepted weight < 0")
	}
}

// TestSampling_SeedReproducible verifies two sources built from the same seed
// drive identical sample sequences.
func TestSampling_SeedReproducible(t *testing.T) {
	first := DefaultSources(NewSource(99))
	second := DefaultSources(NewSource(99))

	for i := 0; i < 1000; i++ {
		a, b := first.Draw(), second.Draw()
		if a != b {
			t.Fatalf("draw %d diverged: %+v != %+v", i, a, b)
		}
	}
}
