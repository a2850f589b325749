package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// newToolCommand attaches the global flags and their validation to a
// top-level tool command.
func newToolCommand(opts *RootOptions, cmd *cobra.Command) *cobra.Command {
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Validate format flag
		if !isValidFormat(opts.Format) {
			return newCommandError(ErrCodeInvalidOption,
				fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newCommandError(ErrCodeInvalidOption, "invalid flag", err)
	})
	cmd.SilenceUsage = true  // Don't print usage on errors
	cmd.SilenceErrors = true // Execute reports errors itself
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

// formatter builds the OutputFormatter for a running command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
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

// exactlyOneArg requires a single positional argument, reporting a
// missing one as ErrCodeMissingArgument.
func exactlyOneArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			return newCommandError(ErrCodeMissingArgument, fmt.Sprintf("missing %s argument", name), nil)
		case 1:
			return nil
		default:
			return newCommandError(ErrCodeInvalidOption,
				fmt.Sprintf("expected exactly one %s argument, got %d", name, len(args)), nil)
		}
	}
}
