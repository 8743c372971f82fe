// Package brownham evaluates the Brown-Ham precipitate "cutting" dislocation
// model and propagates input uncertainty through it by Monte Carlo sampling.
//
// # Overview
//
// The model predicts the stress required for a dislocation to cut through a
// precipitate particle:
//
//	                  ⎛    _________________    ⎞
//	     ⎛ M ⋅ γ  ⎞   ⎜   ╱8.0 ⋅ γ ⋅ φ ⋅ Rs     ⎟
//	σ  = ⎜─────── ⎟ ⋅ ⎜  ╱ ───────────────── - φ⎟
//	 c   ⎝2.0 ⋅ b ⎠   ⎝╲╱  π ⋅ G ⋅ b²           ⎠
//
// Where:
//   - γ (gamma): Anti-phase boundary energy, J/m²
//   - φ (phi): Precipitate volume fraction
//   - Rs: Mean particle radius on the slip plane, m
//   - G: Shear modulus, Pa
//   - b: Burgers vector magnitude, m
//   - M: Taylor factor
//
// Each input is either a fixed scalar or a distribution (Uniform, Gaussian,
// a two-component Mixture, or Constant). A Monte Carlo run draws one sample
// set per iteration, evaluates the model, buffers the outputs, and reports
// their mean and variance.
//
// # Quick Start
//
// Evaluate the reference configuration under 10,000 Monte Carlo iterations:
//
//	src := brownham.NewSource(42)
//
//	cfg := brownham.DefaultConfig()
//	cfg.Sources = brownham.DefaultSources(src)
//	cfg.MonteCarlo = true
//	cfg.Iterations = 10000
//
//	out, err := brownham.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("σc = %e MPa (variance %e)\n", out.Mean, out.Variance)
//
// # Execution Strategies
//
// The model function is pure, branch-free arithmetic, so it runs unchanged
// under either uncertainty-propagation strategy:
//
//   - MonteCarloPropagator: the native explicit sampling loop above.
//   - DelegatedPropagator: a single evaluation on an external
//     distribution-tracking backend that represents each input as a
//     distribution object rather than a scalar.
//
// Both satisfy the Propagator interface; the backend itself is supplied by
// the caller through the narrow DistributionBackend contract.
//
// # Statistics
//
// Output statistics use Welford's single-pass algorithm (Accumulator).
// Monte Carlo runs can span tens of thousands of samples over several orders
// of magnitude, where naive sum-of-squares accumulation loses the variance
// to cancellation.
//
// # Testing
//
// The package exports statistical assertion helpers for sampler tests:
//
//	func TestMySampler(t *testing.T) {
//	    samples := draw(100000)
//
//	    brownham.AssertSamplesWithin(t, samples, 0.15, 0.25)
//	    brownham.AssertMeanNear(t, samples, 0.20, 5e-4)
//	}
//
// # See Also
//
//   - cmd/brownham - command-line driver (modes, file I/O, benchmark output)
//   - examples/delegated - a toy distribution-tracking backend
package brownham
