package brownham

import (
	"fmt"
	"math/rand/v2"
)

// Default parameter sources, matching the reference configuration of the
// Brown-Ham demo.
const (
	DefaultGammaUniformMin = 0.15
	DefaultGammaUniformMax = 0.25
	DefaultPhiUniformMin   = 0.30
	DefaultPhiUniformMax   = 0.45
	DefaultRsFirstMean     = 1e-8
	DefaultRsFirstStddev   = 2e-9
	DefaultRsSecondMean    = 3e-8
	DefaultRsSecondStddev  = 2e-9
	DefaultRsFirstWeight   = 0.5
	DefaultGUniformMin     = 6e10
	DefaultGUniformMax     = 8e10
	DefaultB               = 2.54e-10
	DefaultMUniformMin     = 1.9
	DefaultMUniformMax     = 4.1
)

// Param identifies one of the six model parameters. The ordering (alphabetical
// by symbol) matches the column order of the CSV file formats.
type Param int

const (
	ParamB Param = iota
	ParamG
	ParamGamma
	ParamM
	ParamPhi
	ParamRs
	NumParams int = iota
)

var paramNames = [NumParams]string{"b", "G", "gamma", "M", "phi", "Rs"}

func (p Param) String() string {
	if p < 0 || int(p) >= NumParams {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// ParamNames returns the six parameter symbols in Param order.
func ParamNames() []string {
	names := make([]string, NumParams)
	copy(names, paramNames[:])
	return names
}

// Sources binds each model parameter to the distribution it is drawn from.
// A Constant source models a fixed scalar.
type Sources struct {
	Gamma Dist
	Phi   Dist
	Rs    Dist
	G     Dist
	B     Dist
	M     Dist
}

// DefaultSources returns the reference input configuration:
//
//	gamma  Uniform(0.15, 0.25)
//	phi    Uniform(0.30, 0.45)
//	Rs     0.5·Gauss(1e-8, 2e-9) + 0.5·Gauss(3e-8, 2e-9)
//	G      Uniform(6e10, 8e10)
//	b      2.54e-10
//	M      Uniform(1.9, 4.1)
//
// All distributions share the given random source.
func DefaultSources(src rand.Source) Sources {
	// The default bounds and weights satisfy the constructor invariants, so
	// the errors are structurally impossible here.
	gamma, _ := NewUniform(DefaultGammaUniformMin, DefaultGammaUniformMax, src)
	phi, _ := NewUniform(DefaultPhiUniformMin, DefaultPhiUniformMax, src)
	rsFirst, _ := NewGaussian(DefaultRsFirstMean, DefaultRsFirstStddev, src)
	rsSecond, _ := NewGaussian(DefaultRsSecondMean, DefaultRsSecondStddev, src)
	rs, _ := NewMixture(rsFirst, rsSecond, DefaultRsFirstWeight, src)
	g, _ := NewUniform(DefaultGUniformMin, DefaultGUniformMax, src)
	m, _ := NewUniform(DefaultMUniformMin, DefaultMUniformMax, src)

	return Sources{
		Gamma: gamma,
		Phi:   phi,
		Rs:    rs,
		G:     g,
		B:     Constant{Value: DefaultB},
		M:     m,
	}
}

// ConstantSources builds fixed-scalar sources from one value per parameter,
// indexed in Param order. This is how file-based input is represented.
func ConstantSources(values [NumParams]float64) Sources {
	return Sources{
		B:     Constant{Value: values[ParamB]},
		G:     Constant{Value: values[ParamG]},
		Gamma: Constant{Value: values[ParamGamma]},
		M:     Constant{Value: values[ParamM]},
		Phi:   Constant{Value: values[ParamPhi]},
		Rs:    Constant{Value: values[ParamRs]},
	}
}

// Draw samples every parameter once and returns the resulting sample set.
// Each call is one independent draw per parameter.
func (s Sources) Draw() Inputs {
	return Inputs{
		Gamma: s.Gamma.Rand(),
		Phi:   s.Phi.Rand(),
		Rs:    s.Rs.Rand(),
		G:     s.G.Rand(),
		B:     s.B.Rand(),
		M:     s.M.Rand(),
	}
}

// Complete reports whether every parameter has a source bound.
func (s Sources) Complete() bool {
	return s.Gamma != nil && s.Phi != nil && s.Rs != nil &&
		s.G != nil && s.B != nil && s.M != nil
}

// Set rebinds one parameter's source, returning the updated value.
func (s Sources) Set(p Param, d Dist) Sources {
	switch p {
	case ParamB:
		s.B = d
	case ParamG:
		s.G = d
	case ParamGamma:
		s.Gamma = d
	case ParamM:
		s.M = d
	case ParamPhi:
		s.Phi = d
	case ParamRs:
		s.Rs = d
	}
	return s
}
