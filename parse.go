package brownham

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ParseDist parses a distribution specification string into a Dist. The
// grammar, mirroring the usage text:
//
//	spec    := scalar
//	        | "Uniform(" scalar "," scalar ")"
//	        | "Gauss(" scalar "," scalar ")"
//	        | "Mixture(" spec "," spec "," scalar ")"
//
// A bare scalar yields a Constant. Whitespace around arguments is ignored.
// All parsed distributions draw from src.
func ParseDist(spec string, src rand.Source) (Dist, error) {
	spec = strings.TrimSpace(spec)

	switch {
	case strings.HasPrefix(spec, "Uniform("):
		args, err := splitArgs(spec, "Uniform", 2)
		if err != nil {
			return nil, err
		}
		min, err := parseScalar(args[0])
		if err != nil {
			return nil, fmt.Errorf("Uniform min: %w", err)
		}
		max, err := parseScalar(args[1])
		if err != nil {
			return nil, fmt.Errorf("Uniform max: %w", err)
		}
		return NewUniform(min, max, src)

	case strings.HasPrefix(spec, "Gauss("):
		args, err := splitArgs(spec, "Gauss", 2)
		if err != nil {
			return nil, err
		}
		mean, err := parseScalar(args[0])
		if err != nil {
			return nil, fmt.Errorf("Gauss mean: %w", err)
		}
		stddev, err := parseScalar(args[1])
		if err != nil {
			return nil, fmt.Errorf("Gauss stddev: %w", err)
		}
		return NewGaussian(mean, stddev, src)

	case strings.HasPrefix(spec, "Mixture("):
		args, err := splitArgs(spec, "Mixture", 3)
		if err != nil {
			return nil, err
		}
		a, err := ParseDist(args[0], src)
		if err != nil {
			return nil, fmt.Errorf("Mixture first component: %w", err)
		}
		b, err := ParseDist(args[1], src)
		if err != nil {
			return nil, fmt.Errorf("Mixture second component: %w", err)
		}
		weight, err := parseScalar(args[2])
		if err != nil {
			return nil, fmt.Errorf("Mixture weight: %w", err)
		}
		return NewMixture(a, b, weight, src)

	default:
		v, err := parseScalar(spec)
		if err != nil {
			return nil, fmt.Errorf("distribution spec %q: want a scalar, Uniform(..), Gauss(..), or Mixture(..)", spec)
		}
		return Constant{Value: v}, nil
	}
}

// splitArgs strips "name(" and ")" and splits the argument list on
// top-level commas, so nested Mixture components stay intact.
func splitArgs(spec, name string, want int) ([]string, error) {
	if !strings.HasSuffix(spec, ")") {
		return nil, fmt.Errorf("%s spec %q: missing closing parenthesis", name, spec)
	}
	inner := spec[len(name)+1 : len(spec)-1]

	var args []string
	depth := 0
	start := 0
	for i, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%s spec %q: unbalanced parentheses", name, spec)
			}
		case ',':
			if depth == 0 {
				args = append(args, inner[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%s spec %q: unbalanced parentheses", name, spec)
	}
	args = append(args, inner[start:])

	if len(args) != want {
		return nil, fmt.Errorf("%s spec %q: want %d arguments, got %d", name, spec, want, len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseScalar(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a real number", s)
	}
	return v, nil
}
