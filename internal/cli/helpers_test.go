package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/seqgen/internal/sequence"
	"github.com/roach88/seqgen/internal/store"
)

// executeCommand runs the CLI with the given args and captures output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// tempDB returns a path for a fresh database in a temp dir.
func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "runs.db")
}

// seedRun writes a run straight into the store, bypassing the gen
// command, so tests control ids, timestamps and (possibly corrupted)
// elements exactly.
func seedRun(t *testing.T, dbPath string, run store.Run) {
	t.Helper()

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, st.Close())
	}()

	require.NoError(t, st.WriteRun(context.Background(), run))
}

// parseMean reads avg's single-line text output.
func parseMean(t *testing.T, stdout string) int64 {
	t.Helper()

	v, err := strconv.ParseInt(strings.TrimSpace(stdout), 10, 64)
	require.NoError(t, err)
	return v
}

// generatedRun builds a faithful run record for the fixed seed.
func generatedRun(t *testing.T, id string, size int) store.Run {
	t.Helper()

	seq, err := sequence.New(sequence.DefaultSeed).Generate(size)
	require.NoError(t, err)
	mean, err := sequence.Average(seq)
	require.NoError(t, err)

	return store.Run{
		ID:        id,
		Size:      size,
		Seed:      sequence.DefaultSeed,
		Mean:      mean,
		Elements:  seq,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}
