package brownham

// Accumulator computes a running mean and population variance in a single
// pass using Welford's algorithm:
//
//	δ     = x - mean
//	mean += δ / n
//	M2   += δ · (x - mean)
//
// A naive sum-of-squares accumulation cancels catastrophically when the
// sample count is large and the values span several orders of magnitude,
// which is exactly the regime of a long Monte Carlo run. Welford's update
// keeps the variance accurate regardless of the samples' common offset.
//
// The zero value is an empty accumulator ready for use.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
}

// Add folds one sample into the running statistics.
func (a *Accumulator) Add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// N returns the number of samples accumulated so far.
func (a *Accumulator) N() int { return a.n }

// Mean returns the running mean, or 0 before any sample.
func (a *Accumulator) Mean() float64 { return a.mean }

// Variance returns the population variance of the accumulated samples.
// For fewer than two samples the variance is 0 by definition.
func (a *Accumulator) Variance() float64 {
	if a.n < 2 {
		return 0
	}
	return a.m2 / float64(a.n)
}

// Summarize computes the mean and population variance of samples in one pass.
// An empty slice yields (0, 0).
func Summarize(samples []float64) (mean, variance float64) {
	var acc Accumulator
	for _, x := range samples {
		acc.Add(x)
	}
	return acc.Mean(), acc.Variance()
}
