package brownham

import (
	"fmt"
	"math"
)

// Inputs holds the six physical parameters of the Brown-Ham cutting model.
type Inputs struct {
	Gamma float64 // Anti-phase boundary energy, J/m^2
	Phi   float64 // Precipitate volume fraction, dimensionless
	Rs    float64 // Mean particle radius on the slip plane, m
	G     float64 // Shear modulus, Pa
	B     float64 // Burgers vector magnitude, m
	M     float64 // Taylor factor, dimensionless
}

// CuttingStress computes the precipitate cutting stress σc in MPa:
//
//	                  ⎛    _________________    ⎞
//	     ⎛ M ⋅ γ  ⎞   ⎜   ╱8.0 ⋅ γ ⋅ φ ⋅ Rs     ⎟
//	σ  = ⎜─────── ⎟ ⋅ ⎜  ╱ ───────────────── - φ⎟ / 10⁶
//	 c   ⎝2.0 ⋅ b ⎠   ⎝╲╱  π ⋅ G ⋅ b²           ⎠
//
// The division by 10⁶ converts the result from Pa to MPa.
//
// The function is a pure, branch-free arithmetic expression so that it is
// equally usable under explicit Monte Carlo sampling and under a delegated
// distribution-tracking backend (see DistributionBackend).
//
// Precondition: in.B != 0. With a zero Burgers vector the expression divides
// by zero; with inputs that make the radicand 8γφRs/(πGb²) negative the square
// root is undefined and the result is NaN. Both propagate IEEE-754 values
// rather than panicking. Use CuttingStressChecked when an explicit error is
// preferred.
func CuttingStress(in Inputs) float64 {
	return (in.M * in.Gamma) / (2 * in.B) *
		(math.Sqrt((8*in.Gamma*in.Phi*in.Rs)/(math.Pi*in.G*in.B*in.B)) - in.Phi) / 1e6
}

// InvalidInputError reports an input outside the model's valid domain.
type InvalidInputError struct {
	Param  string  // Offending parameter symbol
	Value  float64 // Offending value
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid model input %s = %g: %s", e.Param, e.Value, e.Reason)
}

// CuttingStressChecked validates the input domain before evaluating the model.
// It returns an *InvalidInputError when b == 0 or when the radicand
// 8γφRs/(πGb²) is negative, instead of letting Inf/NaN propagate.
func CuttingStressChecked(in Inputs) (float64, error) {
	if in.B == 0 {
		return 0, &InvalidInputError{Param: "b", Value: in.B, Reason: "Burgers vector must be non-zero"}
	}
	radicand := (8 * in.Gamma * in.Phi * in.Rs) / (math.Pi * in.G * in.B * in.B)
	if radicand < 0 || math.IsNaN(radicand) {
		return 0, &InvalidInputError{
			Param:  "radicand",
			Value:  radicand,
			Reason: "8γφRs/(πGb²) must be non-negative",
		}
	}
	return CuttingStress(in), nil
}

// EmpiricalTaylorFactors is the 20-value empirical Taylor-factor dataset used
// by the scalar reference variant of the model.
var EmpiricalTaylorFactors = [20]float64{
	3.2, 3.9, 4.1, 3.2, 3.8,
	3.8, 2.1, 3.0, 1.9, 3.9,
	2.3, 2.2, 3.2, 2.2, 3.9,
	2.2, 1.9, 3.2, 3.9, 3.1,
}

// MeanTaylorFactor returns the arithmetic mean of EmpiricalTaylorFactors,
// the Taylor factor the scalar reference variant feeds into the model.
func MeanTaylorFactor() float64 {
	var sum float64
	for _, m := range EmpiricalTaylorFactors {
		sum += m
	}
	return sum / float64(len(EmpiricalTaylorFactors))
}
