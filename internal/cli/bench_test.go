package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchTextOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "bench", "1000")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Benchmark: 1,000 element(s), 1 run(s)")
	assert.Contains(t, stdout, "Gen array")
	assert.Contains(t, stdout, "Average")
	assert.Contains(t, stdout, "Mean")
}

func TestBenchJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "bench", "500", "--runs", "3")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   BenchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 500, resp.Data.Size)
	assert.Equal(t, 3, resp.Data.Runs)
	assert.GreaterOrEqual(t, resp.Data.Mean, int64(0))
	assert.Less(t, resp.Data.Mean, int64(500))
	assert.GreaterOrEqual(t, resp.Data.GenSecs, 0.0)
	assert.GreaterOrEqual(t, resp.Data.AvgSecs, 0.0)
}

func TestBenchInvalidSize(t *testing.T) {
	_, _, err := executeCommand(t, "bench", "lots")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = executeCommand(t, "bench", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBenchInvalidRuns(t *testing.T) {
	_, _, err := executeCommand(t, "bench", "10", "--runs", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
