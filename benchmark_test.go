package brownham

import (
	"testing"
)

// BenchmarkCuttingStress measures the bare kernel: one pure arithmetic
// evaluation per iteration.
func BenchmarkCuttingStress(b *testing.B) {
	in := Inputs{Gamma: 0.2, Phi: 0.375, Rs: 2e-8, G: 7e10, B: 2.54e-10, M: 3.0}

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = CuttingStress(in)
	}
	_ = sink
}

// BenchmarkDrawAndEvaluate measures one full Monte Carlo iteration: six
// distribution draws plus the kernel.
func BenchmarkDrawAndEvaluate(b *testing.B) {
	sources := DefaultSources(NewSource(1))

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = CuttingStress(sources.Draw())
	}
	_ = sink
}

// BenchmarkMonteCarloRun measures the whole driver end to end, buffer and
// statistics included.
func BenchmarkMonteCarloRun(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Sources = DefaultSources(NewSource(1))
	cfg.MonteCarlo = true
	cfg.Iterations = 10000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMixtureRand isolates the bimodal particle-radius draw.
func BenchmarkMixtureRand(b *testing.B) {
	src := NewSource(1)
	first, _ := NewGaussian(DefaultRsFirstMean, DefaultRsFirstStddev, src)
	second, _ := NewGaussian(DefaultRsSecondMean, DefaultRsSecondStddev, src)
	mix, _ := NewMixture(first, second, DefaultRsFirstWeight, src)

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = mix.Rand()
	}
	_ = sink
}
