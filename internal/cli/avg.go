package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/config"
	"github.com/roach88/seqgen/internal/sequence"
	"github.com/roach88/seqgen/internal/store"
)

// AvgOptions holds flags for the avg command.
type AvgOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// AvgResult is the payload for structured avg output.
type AvgResult struct {
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Count int    `json:"count" yaml:"count"`
	Mean  int64  `json:"mean" yaml:"mean"`
}

// NewAvgCommand creates the avg command.
func NewAvgCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &AvgOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "avg [values...]",
		Short: "Compute the truncated integer mean",
		Long: `Compute the truncated integer mean of a sequence.

Values are given either as integer literals on the command line, or
with --id to average a stored run. The sum uses a 64-bit accumulator
and division truncates toward zero.

Examples:
  seqgen avg 1 2 3 4
  seqgen avg -- -3 -4
  seqgen avg --db ./runs.db --id 0195f1f2-...`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAvg(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.Database, "path to SQLite database (required with --id)")
	cmd.Flags().StringVar(&opts.RunID, "id", "", "average a stored run instead of literals")

	return cmd
}

func runAvg(opts *AvgOptions, args []string, cmd *cobra.Command) error {
	var values []int64
	result := AvgResult{}

	switch {
	case opts.RunID != "":
		if len(args) > 0 {
			return NewExitError(ExitCommandError, "cannot combine --id with literal values")
		}
		run, err := loadRun(cmd.Context(), opts.Database, opts.RunID)
		if err != nil {
			return err
		}
		values = run.Elements
		result.RunID = run.ID
	default:
		parsed, err := parseValues(args)
		if err != nil {
			return err
		}
		values = parsed
	}

	mean, err := sequence.Average(values)
	if err != nil {
		if sequence.IsEmptySequence(err) {
			return WrapExitError(ExitCommandError, "nothing to average", err)
		}
		return WrapExitError(ExitCommandError, "averaging failed", err)
	}
	result.Count = len(values)
	result.Mean = mean

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if out.IsText() {
		out.VerboseLog("averaged %d value(s)", result.Count)
		fmt.Fprintln(cmd.OutOrStdout(), result.Mean)
		return nil
	}
	return out.Success(result)
}

// parseValues converts literal arguments to integers.
func parseValues(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %q", arg), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// loadRun fetches a stored run, elements included.
func loadRun(ctx context.Context, database, id string) (store.Run, error) {
	if database == "" {
		return store.Run{}, NewExitError(ExitCommandError, "--id requires --db (or SEQGEN_DB)")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(database)
	if err != nil {
		return store.Run{}, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run, err := st.ReadRun(ctx, id)
	if err != nil {
		return store.Run{}, WrapExitError(ExitCommandError, "failed to read run", err)
	}
	return run, nil
}
