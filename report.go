package brownham

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Variable is one tagged output value handed to a formatter.
type Variable struct {
	Symbol      string  `json:"symbol"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
}

// Report is the structured result record for JSON output.
type Report struct {
	Description string     `json:"description"`
	Variables   []Variable `json:"variables"`
}

const reportDescription = `Precipitate "cutting" dislocation model from Brown and Ham`

// OutcomeVariables builds the tagged output record. Timing adds the elapsed
// CPU time as a second variable.
func OutcomeVariables(o *Outcome, timing bool) []Variable {
	vars := []Variable{
		{
			Symbol:      "sigmaCMpa",
			Description: "Cutting stress (σc)",
			Type:        "double",
			Value:       o.Value,
		},
	}
	if timing {
		vars = append(vars, Variable{
			Symbol:      "cpuTimeUsed",
			Description: "CPU time used (s)",
			Type:        "double",
			Value:       o.Elapsed.Seconds(),
		})
	}
	return vars
}

// WriteHuman prints the human-readable result, and the elapsed time when
// timing is enabled.
func WriteHuman(w io.Writer, o *Outcome, timing bool) error {
	if _, err := fmt.Fprintf(w, "Cutting stress (σc) = %e MPa\n", o.Value); err != nil {
		return err
	}
	if timing {
		if _, err := fmt.Fprintf(w, "CPU time used: %f seconds\n", o.Elapsed.Seconds()); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the structured result record as indented JSON.
func WriteJSON(w io.Writer, o *Outcome, timing bool) error {
	report := Report{
		Description: reportDescription,
		Variables:   OutcomeVariables(o, timing),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(report)
}

// WriteBenchmarkLine prints the fixed two-field benchmark record: the
// floating-point result, then the elapsed time in integer microseconds.
// The format is exactly "%f %d\n" for automated comparison harnesses.
func WriteBenchmarkLine(w io.Writer, value float64, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "%f %d\n", value, elapsed.Microseconds())
	return err
}
