// Command brownham evaluates the Brown-Ham precipitate cutting-stress model,
// optionally propagating input uncertainty by Monte Carlo sampling.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/brownham"
)

// sampleFilePath receives the Monte Carlo output buffer, first line elapsed
// microseconds, then one sample per line.
const sampleFilePath = "data.out"

var flags struct {
	monteCarlo   bool
	iterations   int
	benchmarking bool
	timing       bool
	verbose      bool
	jsonOutput   bool
	inputPath    string
	outputPath   string
	seed         uint64

	gamma string
	phi   string
	rs    string
	g     string
	b     string
	m     string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brownham",
		Short: "Precipitate dislocation model from Brown and Ham",
		Long: "Computes the cutting stress of a metal alloy from six physical parameters\n" +
			"and optionally propagates input uncertainty via Monte Carlo sampling.\n\n" +
			"Parameter values accept either a scalar or a distribution spec:\n" +
			"  Uniform(min, max) | Gauss(mean, stddev) | Mixture(spec, spec, weight)",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.monteCarlo, "monte-carlo", "c", false, "sample input distributions natively")
	f.IntVarP(&flags.iterations, "multiple-executions", "M", 1, "number of kernel executions")
	f.BoolVarP(&flags.benchmarking, "benchmarking", "b", false, "restrict output to '<value> <microseconds>'")
	f.BoolVarP(&flags.timing, "time", "T", false, "time the kernel execution")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "print each iteration's inputs")
	f.BoolVarP(&flags.jsonOutput, "json", "j", false, "print the result as JSON")
	f.StringVarP(&flags.inputPath, "input", "i", "", "read fixed parameter values from a CSV file")
	f.StringVarP(&flags.outputPath, "output", "o", "", "write the result to a CSV file")
	f.Uint64VarP(&flags.seed, "seed", "s", 1, "random seed for reproducible sampling")

	f.StringVarP(&flags.gamma, "apb-energy", "g", "",
		fmt.Sprintf("gamma (default Uniform(%g, %g))", brownham.DefaultGammaUniformMin, brownham.DefaultGammaUniformMax))
	f.StringVarP(&flags.phi, "precipitate-volume-fraction", "p", "",
		fmt.Sprintf("phi (default Uniform(%g, %g))", brownham.DefaultPhiUniformMin, brownham.DefaultPhiUniformMax))
	f.StringVarP(&flags.rs, "mean-particle-radius", "R", "",
		fmt.Sprintf("Rs (default Mixture(Gauss(%g, %g), Gauss(%g, %g), %g))",
			brownham.DefaultRsFirstMean, brownham.DefaultRsFirstStddev,
			brownham.DefaultRsSecondMean, brownham.DefaultRsSecondStddev,
			brownham.DefaultRsFirstWeight))
	f.StringVarP(&flags.g, "shear-modulus", "G", "",
		fmt.Sprintf("G (default Uniform(%g, %g))", brownham.DefaultGUniformMin, brownham.DefaultGUniformMax))
	f.StringVarP(&flags.b, "burgers-vector", "B", "",
		fmt.Sprintf("b (default %g)", brownham.DefaultB))
	f.StringVarP(&flags.m, "taylor-factor", "m", "",
		fmt.Sprintf("M (default Uniform(%g, %g))", brownham.DefaultMUniformMin, brownham.DefaultMUniformMax))

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))

	src := brownham.NewSource(flags.seed)

	cfg := brownham.DefaultConfig()
	cfg.MonteCarlo = flags.monteCarlo
	cfg.Iterations = flags.iterations
	cfg.Benchmarking = flags.benchmarking
	cfg.Timing = flags.timing
	cfg.Verbose = flags.verbose
	cfg.JSONOutput = flags.jsonOutput
	cfg.InputPath = flags.inputPath
	cfg.OutputPath = flags.outputPath
	cfg.Sources = brownham.DefaultSources(src)

	if err := applyOverrides(&cfg, src); err != nil {
		return err
	}

	if cfg.InputPath != "" {
		sources, err := brownham.ReadInputCSV(cfg.InputPath)
		if err != nil {
			return err
		}
		cfg.Sources = sources
	}

	if flags.verbose {
		cfg.Observer = func(i int, in brownham.Inputs, sigma float64) {
			slog.Debug("model evaluation",
				"iteration", i,
				"gamma", in.Gamma,
				"phi", in.Phi,
				"Rs", in.Rs,
				"G", in.G,
				"b", in.B,
				"M", in.M,
				"sigmaCMpa", sigma,
			)
		}
	}

	out, err := brownham.Run(cfg)
	if err != nil {
		return err
	}

	if cfg.Benchmarking {
		if err := brownham.WriteBenchmarkLine(os.Stdout, out.Value, out.Elapsed); err != nil {
			return err
		}
	} else if cfg.JSONOutput {
		if err := brownham.WriteJSON(os.Stdout, out, cfg.Timing); err != nil {
			return err
		}
	} else {
		if err := brownham.WriteHuman(os.Stdout, out, cfg.Timing); err != nil {
			return err
		}
	}

	if cfg.MonteCarlo {
		return brownham.WriteSamples(sampleFilePath, out.Elapsed, out.Samples)
	}
	if cfg.OutputPath != "" {
		return brownham.WriteOutputCSV(cfg.OutputPath, brownham.OutcomeVariables(out, cfg.Timing))
	}
	return nil
}

// applyOverrides rebinds every parameter that has a command-line value,
// table-driven so each parameter follows the identical parse-and-set path.
func applyOverrides(cfg *brownham.Config, src rand.Source) error {
	overrides := []struct {
		symbol string
		raw    string
		param  brownham.Param
	}{
		{"gamma", flags.gamma, brownham.ParamGamma},
		{"phi", flags.phi, brownham.ParamPhi},
		{"Rs", flags.rs, brownham.ParamRs},
		{"G", flags.g, brownham.ParamG},
		{"b", flags.b, brownham.ParamB},
		{"M", flags.m, brownham.ParamM},
	}

	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		d, err := brownham.ParseDist(o.raw, src)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", o.symbol, err)
		}
		cfg.Sources = cfg.Sources.Set(o.param, d)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
