package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/config"
	"github.com/roach88/seqgen/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// ListResult is the payload for structured list output.
type ListResult struct {
	Runs  []store.Run `json:"runs" yaml:"runs"`
	Total int         `json:"total" yaml:"total"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		Long: `List runs recorded in the database, newest first.

Elements are not loaded; use avg --id or verify to work with a
specific run.

Examples:
  seqgen list --db ./runs.db
  seqgen list --db ./runs.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.Database, "path to SQLite database (required)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	if opts.Database == "" {
		return NewExitError(ExitCommandError, "list requires --db (or SEQGEN_DB)")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if out.IsText() {
		printRunsText(cmd.OutOrStdout(), runs)
		return nil
	}
	return out.Success(ListResult{Runs: runs, Total: len(runs)})
}

func printRunsText(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "Runs: %d\n", len(runs))
	for _, run := range runs {
		name := run.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "  %s\n", run.ID)
		fmt.Fprintf(w, "    Name: %s\n", name)
		fmt.Fprintf(w, "    Size: %d  Seed: %d  Mean: %d\n", run.Size, run.Seed, run.Mean)
		fmt.Fprintf(w, "    Created: %s\n", run.CreatedAt.UTC().Format(time.RFC3339))
	}
}
