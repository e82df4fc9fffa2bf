package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the seqgen CLI.
//
// Invoked bare, seqgen prints the single diagnostic line "test" and
// exits 0. Everything else lives in subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cfg, cfgErr := config.FromEnv()

	cmd := &cobra.Command{
		Use:   "seqgen",
		Short: "seqgen - deterministic bounded integer sequences",
		Long: `Generate deterministic pseudo-random integer sequences bounded by
their own size, average them, and record runs for later verification.

Every sequence of size N holds exactly N elements in [0, N), produced
from a fixed seed: the same size always yields the same sequence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			configureLogging(opts.Verbose)
			if cfgErr != nil {
				// Bad env vars must not break the bare entry point;
				// fall back to flag defaults and say so.
				slog.Warn("ignoring invalid environment configuration", "error", cfgErr)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Diagnostic line, verbatim. Not subject to --format.
			fmt.Fprintln(cmd.OutOrStdout(), "test")
		},
	}

	// Global flags, with env-provided defaults
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat(cfg), "output format (text|json|yaml)")

	// Add subcommands
	cmd.AddCommand(NewGenCommand(opts, cfg))
	cmd.AddCommand(NewAvgCommand(opts, cfg))
	cmd.AddCommand(NewListCommand(opts, cfg))
	cmd.AddCommand(NewVerifyCommand(opts, cfg))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// defaultFormat guards against an empty or junk env value; the flag
// validation in PersistentPreRunE still rejects explicit bad input.
func defaultFormat(cfg config.Config) string {
	if isValidFormat(cfg.Format) {
		return cfg.Format
	}
	return "text"
}

// configureLogging installs the process slog handler.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
