package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var negativeNumber = regexp.MustCompile(`^-[0-9]`)

// NormalizeArgs moves arguments that look like negative numbers ("-60",
// "-0x3c") behind a "--" terminator so the flag parser keeps them as
// positional values. The value of a flag given as "--name value" stays in
// place. Everything after an existing "--" is positional already.
func NormalizeArgs(cmd *cobra.Command, args []string) []string {
	flags := []string{} // never nil: cobra falls back to os.Args on nil
	var values []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			values = append(values, args[i+1:]...)
			break
		}
		if negativeNumber.MatchString(arg) {
			values = append(values, arg)
			continue
		}
		flags = append(flags, arg)
		if takesValue(cmd, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	if len(values) == 0 {
		return flags
	}
	out := make([]string, 0, len(flags)+1+len(values))
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, values...)
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	name := strings.TrimLeft(arg, "-")
	lookup := cmd.Flags().Lookup
	persistent := cmd.PersistentFlags().Lookup
	if !strings.HasPrefix(arg, "--") {
		if len(name) != 1 {
			return false
		}
		lookup = cmd.Flags().ShorthandLookup
		persistent = cmd.PersistentFlags().ShorthandLookup
	}
	f := lookup(name)
	if f == nil {
		f = persistent(name)
	}
	return f != nil && f.NoOptDefVal == ""
}

// Execute runs a tool command with the given arguments and returns the
// process exit code. Errors are reported on the command's stderr in the
// selected format; stdout is left untouched on failure.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(NormalizeArgs(cmd, args))

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	format, _ := cmd.PersistentFlags().GetString("format")
	if !isValidFormat(format) {
		format = "text"
	}
	verbose, _ := cmd.PersistentFlags().GetBool("verbose")
	formatter := &OutputFormatter{
		Format:  format,
		Writer:  cmd.ErrOrStderr(),
		Verbose: verbose,
	}
	_ = formatter.Error(getErrCode(err), err.Error())

	return GetExitCode(err)
}
