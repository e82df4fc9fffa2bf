package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/config"
	"github.com/roach88/seqgen/internal/sequence"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
}

// VerifyResult is the payload for structured verify output.
type VerifyResult struct {
	RunID      string `json:"run_id" yaml:"run_id"`
	Size       int    `json:"size" yaml:"size"`
	Seed       int64  `json:"seed" yaml:"seed"`
	Match      bool   `json:"match" yaml:"match"`
	Mismatches int    `json:"mismatches" yaml:"mismatches"`
	FirstDiff  int    `json:"first_diff" yaml:"first_diff"` // index of first divergence, -1 when none
	MeanOK     bool   `json:"mean_ok" yaml:"mean_ok"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <run-id>",
		Short: "Verify a stored run against regeneration",
		Long: `Regenerate a stored run from its recorded size and seed, and compare
element-for-element against what was stored.

The generator is deterministic, so any divergence means the stored
data was modified after the fact. Divergence exits with status 1.

Examples:
  seqgen verify --db ./runs.db 0195f1f2-...
  seqgen verify --db ./runs.db 0195f1f2-... --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", cfg.Database, "path to SQLite database (required)")

	return cmd
}

func runVerify(opts *VerifyOptions, runID string, cmd *cobra.Command) error {
	run, err := loadRun(cmd.Context(), opts.Database, runID)
	if err != nil {
		return err
	}

	gen := sequence.New(run.Seed)
	expected, err := gen.Generate(run.Size)
	if err != nil {
		return WrapExitError(ExitCommandError, "regeneration failed", err)
	}

	result := VerifyResult{
		RunID:     run.ID,
		Size:      run.Size,
		Seed:      run.Seed,
		Match:     true,
		FirstDiff: -1,
	}

	if len(run.Elements) != len(expected) {
		result.Match = false
		result.Mismatches = run.Size
		result.FirstDiff = 0
	} else {
		for i := range expected {
			if run.Elements[i] != expected[i] {
				if result.Match {
					result.FirstDiff = i
				}
				result.Match = false
				result.Mismatches++
			}
		}
	}

	expectedMean, err := sequence.Average(expected)
	if err != nil {
		return WrapExitError(ExitCommandError, "averaging failed", err)
	}
	result.MeanOK = run.Mean == expectedMean

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if out.IsText() {
		printVerifyText(cmd, result)
	} else if err := out.Success(result); err != nil {
		return err
	}

	if !result.Match || !result.MeanOK {
		return NewExitError(ExitFailure, fmt.Sprintf("run %s diverges from regeneration", run.ID))
	}
	return nil
}

func printVerifyText(cmd *cobra.Command, result VerifyResult) {
	w := cmd.OutOrStdout()

	if result.Match && result.MeanOK {
		fmt.Fprintf(w, "PASS run %s (size=%d seed=%d)\n", result.RunID, result.Size, result.Seed)
		return
	}

	fmt.Fprintf(w, "FAIL run %s (size=%d seed=%d)\n", result.RunID, result.Size, result.Seed)
	if !result.Match {
		fmt.Fprintf(w, "  Mismatched elements: %d (first at index %d)\n", result.Mismatches, result.FirstDiff)
	}
	if !result.MeanOK {
		fmt.Fprintln(w, "  Stored mean does not match regenerated mean")
	}
}
