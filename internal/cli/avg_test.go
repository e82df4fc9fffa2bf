package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seqgen/internal/sequence"
)

func TestAvgLiterals(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"exact mean", []string{"2", "4", "6"}, "4\n"},
		{"truncates remainder", []string{"1", "2", "3", "4"}, "2\n"},
		{"single value", []string{"7"}, "7\n"},
		{"negatives toward zero", []string{"--", "-3", "-4"}, "-3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append([]string{"avg"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestAvgJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "avg", "1", "2", "3", "4")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   AvgResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Data.Count)
	assert.Equal(t, int64(2), resp.Data.Mean)
}

func TestAvgEmpty(t *testing.T) {
	_, _, err := executeCommand(t, "avg")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, sequence.IsEmptySequence(err))
}

func TestAvgInvalidLiteral(t *testing.T) {
	_, _, err := executeCommand(t, "avg", "1", "two")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `"two"`)
}

func TestAvgStoredRun(t *testing.T) {
	db := tempDB(t)
	seedRun(t, db, generatedRun(t, "run-avg", 9))

	stdout, _, err := executeCommand(t, "avg", "--db", db, "--id", "run-avg")
	require.NoError(t, err)

	want := generatedRun(t, "run-avg", 9)
	assert.Equal(t, want.Mean, parseMean(t, stdout))
}

func TestAvgStoredRunMissing(t *testing.T) {
	db := tempDB(t)
	seedRun(t, db, generatedRun(t, "run-present", 3))

	_, _, err := executeCommand(t, "avg", "--db", db, "--id", "run-absent")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAvgIDRequiresDB(t *testing.T) {
	t.Setenv("SEQGEN_DB", "")

	_, _, err := executeCommand(t, "avg", "--id", "some-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db")
}

func TestAvgIDRejectsLiterals(t *testing.T) {
	_, _, err := executeCommand(t, "avg", "--db", tempDB(t), "--id", "some-run", "1", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "cannot combine")
}
