package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/internal/batch"
	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/internal/textio"
	"github.com/katalvlaran/lvknap/knapsack"
)

const classic = "0.5\n50\n10 60\n20 100\n30 120\n"

func testConfig() *config.Config {
	return &config.Config{
		Precision:     0.1,
		MaxTableCells: knapsack.DefaultMaxTableCells,
		Workers:       2,
		LogLevel:      "error",
		LogFormat:     "json",
	}
}

// execute runs the command tree on a fresh config and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_SolveStdin(t *testing.T) {
	out, _, err := execute(t, classic)
	require.NoError(t, err)
	assert.Equal(t, "50 220\n2\n3\n", out)
}

func TestRoot_SolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(classic), 0o600))

	out, _, err := execute(t, "", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "50 220\n2\n3\n", out)

	_, _, err = execute(t, "", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRoot_Exact(t *testing.T) {
	out, _, err := execute(t, classic, "--exact")
	require.NoError(t, err)
	assert.Equal(t, "50 220\n2\n3\n", out)

	out, _, err = execute(t, classic, "exact")
	require.NoError(t, err)
	assert.Equal(t, "50 220\n2\n3\n", out)
}

func TestRoot_Errors(t *testing.T) {
	_, _, err := execute(t, "0.5\n")
	assert.ErrorIs(t, err, textio.ErrMalformedInput)

	_, _, err = execute(t, classic, "--precision", "0")
	assert.ErrorIs(t, err, knapsack.ErrInvalidConfiguration)

	_, _, err = execute(t, classic, "--max-nodes", "1")
	assert.ErrorIs(t, err, knapsack.ErrResourceExhaustion)

	_, _, err = execute(t, "0.5\n10\n0 5\n")
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)

	_, _, err = execute(t, classic, "--log-format", "xml")
	assert.Error(t, err)
}

func TestRoot_Stats(t *testing.T) {
	out, logs, err := execute(t, classic, "--stats", "--log-level", "info")
	require.NoError(t, err)
	assert.Equal(t, "50 220\n2\n3\n", out, "stats go to stderr only")
	assert.Contains(t, logs, `"message":"search stats"`)
	assert.Contains(t, logs, `"nodes_created"`)
}

func TestExact_NoSearchStats(t *testing.T) {
	_, _, err := execute(t, classic, "--exact", "--stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exact")

	_, _, err = execute(t, classic, "exact", "--stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

const batchDoc = `
instances:
  - name: classic
    precision: 0.5
    capacity: 50
    items: [[10, 60], [20, 100], [30, 120]]
  - name: broken
    capacity: 0
    items: [[1, 1]]
  - name: single
    capacity: 5
    items: [[5, 10]]
`

func decodeReport(t *testing.T, out string) []batch.Result {
	t.Helper()

	var results []batch.Result
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r batch.Result
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		results = append(results, r)
	}
	return results
}

func TestBatch_ContinueOnError(t *testing.T) {
	out, _, err := execute(t, batchDoc, "batch", "--continue-on-error", "--workers", "3")
	require.NoError(t, err)

	results := decodeReport(t, out)
	require.Len(t, results, 3)
	assert.Equal(t, []int{2, 3}, results[0].Indices)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, 0.1, results[2].Precision, "precision defaults to KNAPSACK_PRECISION")
	assert.Equal(t, int64(10), results[2].TotalCost)
}

func TestBatch_StopOnError(t *testing.T) {
	out, _, err := execute(t, batchDoc, "batch", "--workers", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	results := decodeReport(t, out)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"classic", "broken", "single"},
		[]string{results[0].Name, results[1].Name, results[2].Name})
	assert.Contains(t, results[2].Error, "not run")
}

func TestBatch_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.jsonl")

	out, _, err := execute(t, batchDoc, "batch", "--continue-on-error", "--exact", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	results := decodeReport(t, string(data))
	require.Len(t, results, 3)
	assert.Equal(t, "exact-dp", results[0].Algo)
	assert.Equal(t, int64(220), results[0].TotalCost)
}

func TestBatch_Malformed(t *testing.T) {
	_, _, err := execute(t, "instances: 3\n", "batch")
	assert.ErrorIs(t, err, textio.ErrMalformedInput)
}
