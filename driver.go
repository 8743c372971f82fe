package brownham

import (
	"errors"
	"fmt"
	"time"
)

// ErrFileInputWithMonteCarlo reports the one contradictory flag combination:
// file-based input supplies a single fixed value per parameter, which leaves
// a Monte Carlo run nothing to sample.
var ErrFileInputWithMonteCarlo = errors.New("file-based input is not supported in Monte Carlo mode")

// Config is the immutable run configuration. Construct it once at startup,
// validate it, and pass it by value; nothing mutates it afterwards.
type Config struct {
	MonteCarlo   bool // Sample the input distributions Iterations times
	Iterations   int  // Loop count; must be >= 1
	Benchmarking bool // Restrict reporting to the "<value> <microseconds>" line
	Timing       bool // Measure and report elapsed time
	Verbose      bool
	JSONOutput   bool

	InputPath  string // Optional CSV of fixed parameter values
	OutputPath string // Optional CSV destination for the result

	Sources Sources // One distribution (or Constant) per parameter

	// Observer, when non-nil, sees every sample set and its model output as
	// the loop runs. Used for verbose reporting; must not mutate its inputs.
	Observer func(iteration int, in Inputs, sigmaCMpa float64)
}

// DefaultConfig returns a single-shot configuration with no sources bound.
// Callers attach Sources (DefaultSources, ConstantSources, or a custom set)
// before running.
func DefaultConfig() Config {
	return Config{Iterations: 1}
}

// Validate rejects malformed configurations before any sampling or
// allocation happens.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.InputPath != "" && c.MonteCarlo {
		return ErrFileInputWithMonteCarlo
	}
	if !c.Sources.Complete() {
		return errors.New("every parameter needs a source bound")
	}
	return nil
}

// Outcome holds everything a run produces. Samples is only materialized in
// Monte Carlo mode and is owned by the caller once Run returns.
type Outcome struct {
	Value    float64       // Reported scalar: the draw, or the Monte Carlo mean
	Mean     float64       // Equals Value outside Monte Carlo mode
	Variance float64       // 0 for a single evaluation
	Samples  []float64     // One model output per iteration (Monte Carlo only)
	Elapsed  time.Duration // Wall time bracketing the whole loop
}

// Run executes the model under the configured mode.
//
// Single-shot draws one sample set and evaluates once. Monte Carlo draws
// Iterations independent sample sets, buffers every output, and reports the
// buffer's mean and population variance. The loop is strictly sequential and
// runs to completion; all failure paths are exhausted before it starts.
func Run(cfg Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var samples []float64
	if cfg.MonteCarlo {
		samples = make([]float64, 0, cfg.Iterations)
	}

	var acc Accumulator
	var value float64

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		in := cfg.Sources.Draw()
		value = CuttingStress(in)
		if cfg.Observer != nil {
			cfg.Observer(i, in, value)
		}
		if cfg.MonteCarlo {
			samples = append(samples, value)
			acc.Add(value)
		}
	}
	elapsed := time.Since(start)

	out := &Outcome{Value: value, Mean: value, Elapsed: elapsed}
	if cfg.MonteCarlo {
		out.Value = acc.Mean()
		out.Mean = acc.Mean()
		out.Variance = acc.Variance()
		out.Samples = samples
	}
	return out, nil
}

// Propagator evaluates the cutting-stress model under uncertainty. The two
// strategies are explicit Monte Carlo sampling (MonteCarloPropagator) and a
// single delegated evaluation on a distribution-tracking backend
// (DelegatedPropagator). The model itself is strategy-agnostic.
type Propagator interface {
	Propagate(cfg Config) (*Outcome, error)
}

// MonteCarloPropagator is the native sampling strategy; it defers to Run.
type MonteCarloPropagator struct{}

// Propagate implements Propagator.
func (MonteCarloPropagator) Propagate(cfg Config) (*Outcome, error) {
	return Run(cfg)
}

// DistributionBackend is the narrow contract for an external numeric engine
// that carries full distributions through one evaluation of the model instead
// of sampling. The model function it receives is pure arithmetic with no
// branching on input values, so the backend may substitute its own
// distribution-valued operands.
type DistributionBackend interface {
	Evaluate(model func(Inputs) float64, sources Sources) (mean, variance float64, err error)
}

// DelegatedPropagator hands the model and its input sources to an external
// distribution-tracking backend in a single call.
type DelegatedPropagator struct {
	Backend DistributionBackend
}

// Propagate implements Propagator.
func (d DelegatedPropagator) Propagate(cfg Config) (*Outcome, error) {
	if d.Backend == nil {
		return nil, errors.New("delegated propagation requires a backend")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	mean, variance, err := d.Backend.Evaluate(CuttingStress, cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("distribution backend: %w", err)
	}
	return &Outcome{
		Value:    mean,
		Mean:     mean,
		Variance: variance,
		Elapsed:  time.Since(start),
	}, nil
}
