package brownham

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// WriteSamples persists a Monte Carlo output buffer: line 1 is the elapsed
// time in integer microseconds, then one sample per line in iteration order.
// Samples are printed with the shortest representation that round-trips
// float64 exactly.
func WriteSamples(path string, elapsed time.Duration, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample file %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", elapsed.Microseconds())
	for _, s := range samples {
		w.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write sample file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write sample file %q: %w", path, err)
	}
	return nil
}

// ReadSamples reads a file written by WriteSamples and returns the elapsed
// microseconds header and the sample sequence in file order.
func ReadSamples(path string) (elapsedMicros int64, samples []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("open sample file %q: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("sample file %q: missing elapsed-microseconds header", path)
	}
	elapsedMicros, err = strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("sample file %q: bad header %q: %w", path, sc.Text(), err)
	}

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("sample file %q: bad sample %q: %w", path, sc.Text(), err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("read sample file %q: %w", path, err)
	}
	return elapsedMicros, samples, nil
}

// ReadInputCSV reads one fixed value per parameter from a CSV file with a
// header row of parameter symbols and a single data row. Columns may appear
// in any order; all six parameters must be present.
func ReadInputCSV(path string) (Sources, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sources{}, fmt.Errorf("open input CSV %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return Sources{}, fmt.Errorf("parse input CSV %q: %w", path, err)
	}
	if len(records) != 2 {
		return Sources{}, fmt.Errorf("input CSV %q: want a header row and one data row, got %d rows", path, len(records))
	}

	header, row := records[0], records[1]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var values [NumParams]float64
	for p := 0; p < NumParams; p++ {
		name := Param(p).String()
		col, ok := index[name]
		if !ok {
			return Sources{}, fmt.Errorf("input CSV %q: missing column %q", path, name)
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return Sources{}, fmt.Errorf("input CSV %q: column %q: bad value %q: %w", path, name, row[col], err)
		}
		values[p] = v
	}
	return ConstantSources(values), nil
}

// WriteOutputCSV writes the tagged output variables as a CSV file with a
// header row of symbols and a single data row of values.
func WriteOutputCSV(path string, vars []Variable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output CSV %q: %w", path, err)
	}

	header := make([]string, len(vars))
	row := make([]string, len(vars))
	for i, v := range vars {
		header[i] = v.Symbol
		row[i] = strconv.FormatFloat(v.Value, 'g', -1, 64)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll([][]string{header, row}); err != nil {
		f.Close()
		return fmt.Errorf("write output CSV %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write output CSV %q: %w", path, err)
	}
	return nil
}
