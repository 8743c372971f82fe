package brownham

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSamples_RoundTrip verifies the persisted Monte Carlo format reproduces
// the exact float sequence and the elapsed-microseconds header.
func TestSamples_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.out")

	cfg := DefaultConfig()
	cfg.Sources = DefaultSources(NewSource(21))
	cfg.MonteCarlo = true
	cfg.Iterations = 500

	out, err := Run(cfg)
	require.NoError(t, err)

	// Values that stress the shortest-round-trip formatting.
	out.Samples = append(out.Samples, 1.0/3.0, math.MaxFloat64, 5e-324, 0, -654.321)

	require.NoError(t, WriteSamples(path, 1234567*time.Microsecond, out.Samples))

	elapsed, samples, err := ReadSamples(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234567), elapsed)
	require.Len(t, samples, len(out.Samples))
	for i := range samples {
		assert.Equal(t, out.Samples[i], samples[i], "sample %d", i)
	}
}

func TestReadSamples_Malformed(t *testing.T) {
	dir := t.TempDir()

	_, _, err := ReadSamples(filepath.Join(dir, "missing.out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.out")

	empty := filepath.Join(dir, "empty.out")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, _, err = ReadSamples(empty)
	assert.Error(t, err, "missing header must be rejected")

	badHeader := filepath.Join(dir, "bad.out")
	require.NoError(t, os.WriteFile(badHeader, []byte("not-a-number\n1.5\n"), 0o644))
	_, _, err = ReadSamples(badHeader)
	assert.Error(t, err)
}

// TestReadInputCSV verifies the file-input mode: a header of parameter
// symbols in any order and one value row become Constant sources.
func TestReadInputCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.csv")
	csv := "gamma,phi,Rs,G,b,M\n0.2,0.375,2e-08,7e+10,2.54e-10,3\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	sources, err := ReadInputCSV(path)
	require.NoError(t, err)

	in := sources.Draw()
	assert.Equal(t, 0.2, in.Gamma)
	assert.Equal(t, 0.375, in.Phi)
	assert.Equal(t, 2e-8, in.Rs)
	assert.Equal(t, 7e10, in.G)
	assert.Equal(t, 2.54e-10, in.B)
	assert.Equal(t, 3.0, in.M)

	// Fixed values: every draw is identical.
	assert.Equal(t, in, sources.Draw())
}

func TestReadInputCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadInputCSV(filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")

	missingColumn := filepath.Join(dir, "partial.csv")
	require.NoError(t, os.WriteFile(missingColumn, []byte("gamma,phi\n0.2,0.375\n"), 0o644))
	_, err = ReadInputCSV(missingColumn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")

	badValue := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badValue, []byte("gamma,phi,Rs,G,b,M\nx,0.375,2e-08,7e+10,2.54e-10,3\n"), 0o644))
	_, err = ReadInputCSV(badValue)
	require.Error(t, err)
}

func TestWriteOutputCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	out := &Outcome{Value: 654.321, Elapsed: 2 * time.Second}
	require.NoError(t, WriteOutputCSV(path, OutcomeVariables(out, true)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sigmaCMpa,cpuTimeUsed\n654.321,2\n", string(data))
}
