package brownham

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Dist produces one independent scalar sample per call. Implementations hold
// no state across calls beyond their random source; two Dists sharing a
// source draw from the same stream.
type Dist interface {
	Rand() float64
}

// NewSource returns a seedable random source. Runs configured with the same
// seed draw identical sample sequences.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Constant is the degenerate distribution: every draw returns Value.
type Constant struct {
	Value float64
}

// Rand implements Dist.
func (c Constant) Rand() float64 { return c.Value }

func (c Constant) String() string { return fmt.Sprintf("%g", c.Value) }

// Uniform samples uniformly from the half-open interval [Min, Max).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform builds a uniform distribution over [min, max).
// Invariant: min <= max.
func NewUniform(min, max float64, src rand.Source) (Uniform, error) {
	if min > max {
		return Uniform{}, fmt.Errorf("uniform: min %g exceeds max %g", min, max)
	}
	return Uniform{dist: distuv.Uniform{Min: min, Max: max, Src: src}}, nil
}

// Rand implements Dist.
func (u Uniform) Rand() float64 { return u.dist.Rand() }

func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(%g, %g)", u.dist.Min, u.dist.Max)
}

// Gaussian samples from a normal distribution.
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian builds a normal distribution with the given mean and standard
// deviation. Invariant: stddev >= 0; a zero stddev degenerates to the mean.
func NewGaussian(mean, stddev float64, src rand.Source) (Gaussian, error) {
	if stddev < 0 {
		return Gaussian{}, fmt.Errorf("gaussian: negative stddev %g", stddev)
	}
	return Gaussian{dist: distuv.Normal{Mu: mean, Sigma: stddev, Src: src}}, nil
}

// Rand implements Dist.
func (g Gaussian) Rand() float64 { return g.dist.Rand() }

func (g Gaussian) String() string {
	return fmt.Sprintf("Gauss(%g, %g)", g.dist.Mu, g.dist.Sigma)
}

// Mixture draws from component A with probability WeightA, else from B.
// Models bimodal populations such as a two-phase particle-radius
// distribution.
type Mixture struct {
	a, b    Dist
	weightA float64
	rnd     *rand.Rand
}

// NewMixture builds a two-component mixture. Invariant: weightA in [0, 1].
func NewMixture(a, b Dist, weightA float64, src rand.Source) (*Mixture, error) {
	if weightA < 0 || weightA > 1 {
		return nil, fmt.Errorf("mixture: weight %g outside [0, 1]", weightA)
	}
	return &Mixture{a: a, b: b, weightA: weightA, rnd: rand.New(src)}, nil
}

// Rand implements Dist.
func (m *Mixture) Rand() float64 {
	if m.rnd.Float64() < m.weightA {
		return m.a.Rand()
	}
	return m.b.Rand()
}

func (m *Mixture) String() string {
	return fmt.Sprintf("Mixture(%v, %v, %g)", m.a, m.b, m.weightA)
}
