package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/config"
	"github.com/roach88/seqgen/internal/sequence"
	"github.com/roach88/seqgen/internal/store"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	Database string
	Save     bool
	Name     string
}

// GenResult is the payload for structured gen output.
type GenResult struct {
	RunID    string  `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Size     int     `json:"size" yaml:"size"`
	Seed     int64   `json:"seed" yaml:"seed"`
	Mean     int64   `json:"mean" yaml:"mean"`
	Elements []int64 `json:"elements" yaml:"elements"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen <size>",
		Short: "Generate a bounded deterministic sequence",
		Long: `Generate a sequence of <size> pseudo-random integers, each in
[0, size), from the fixed seed. The same size always produces the
same sequence.

With --save, the run is recorded in the SQLite database under a
fresh UUIDv7 run id, for later listing and verification.

Examples:
  seqgen gen 5
  seqgen gen 1000 --format json
  seqgen gen 1000 --save --db ./runs.db --name nightly`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.Database, "path to SQLite database (required with --save)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "record the run in the database")
	cmd.Flags().StringVar(&opts.Name, "name", "", "label for the saved run")

	return cmd
}

func runGen(opts *GenOptions, sizeArg string, cmd *cobra.Command) error {
	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid size %q", sizeArg), err)
	}

	gen := sequence.New(sequence.DefaultSeed)
	seq, err := gen.Generate(size)
	if err != nil {
		return WrapExitError(ExitCommandError, "generation failed", err)
	}

	mean, err := sequence.Average(seq)
	if err != nil {
		return WrapExitError(ExitCommandError, "averaging failed", err)
	}

	result := GenResult{
		Size:     size,
		Seed:     gen.Seed(),
		Mean:     mean,
		Elements: seq,
	}

	if opts.Save {
		if opts.Database == "" {
			return NewExitError(ExitCommandError, "--save requires --db (or SEQGEN_DB)")
		}
		id, err := saveRun(cmd.Context(), opts, result)
		if err != nil {
			return err
		}
		result.RunID = id
		result.Name = opts.Name
		slog.Info("run saved", "id", id, "size", size)
	}

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if out.IsText() {
		printGenText(cmd, result)
		return nil
	}
	return out.Success(result)
}

// saveRun records the generated sequence and returns the new run id.
func saveRun(ctx context.Context, opts *GenOptions, result GenResult) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to create run id", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run := store.Run{
		ID:       id.String(),
		Name:     opts.Name,
		Size:     result.Size,
		Seed:     result.Seed,
		Mean:     result.Mean,
		Elements: result.Elements,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return "", WrapExitError(ExitCommandError, "failed to write run", err)
	}

	return id.String(), nil
}

func printGenText(cmd *cobra.Command, result GenResult) {
	w := cmd.OutOrStdout()

	elems := make([]string, len(result.Elements))
	for i, e := range result.Elements {
		elems[i] = strconv.FormatInt(e, 10)
	}
	fmt.Fprintln(w, strings.Join(elems, " "))
	fmt.Fprintf(w, "size=%d seed=%d mean=%d\n", result.Size, result.Seed, result.Mean)
	if result.RunID != "" {
		fmt.Fprintf(w, "saved run %s\n", result.RunID)
	}
}
