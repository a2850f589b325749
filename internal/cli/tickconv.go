package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/baktools/internal/gametime"
	"github.com/roach88/baktools/internal/savefile"
)

// TickConvOptions holds flags for the tickconv command.
type TickConvOptions struct {
	*RootOptions
	SavePath string
	Slept    bool
}

// TickConvResult is a converted tick count, optionally with the
// last-slept time read from a save.
type TickConvResult struct {
	gametime.Breakdown
	Slept *gametime.Breakdown `json:"slept,omitempty"`
}

func (r TickConvResult) String() string {
	s := r.Breakdown.String()
	if r.Slept != nil {
		s += "\nslept " + r.Slept.String()
	}
	return s
}

// NewTickConvCommand creates the tickconv tool command.
func NewTickConvCommand() *cobra.Command {
	rootOpts := &RootOptions{}
	opts := &TickConvOptions{RootOptions: rootOpts}

	cmd := newToolCommand(rootOpts, &cobra.Command{
		Use:   "tickconv <ticks>",
		Short: "Convert game clock ticks to days, hours, minutes and seconds",
		Long: `Convert game clock ticks to days, hours, minutes and seconds.

One tick is two seconds. The tick count is decimal, or hexadecimal when
prefixed with 0x. With --save the world clock is read from a save file
instead.

Example:
  tickconv 0x3c
  d 0.001388888888888889 h 0.03333333333333333 m 2.0 s 120`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.SavePath != "" {
				if len(args) != 0 {
					return newCommandError(ErrCodeInvalidOption, "cannot combine a tick count with --save", nil)
				}
				return nil
			}
			return exactlyOneArg("tick count")(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTickConv(opts, args, cmd)
		},
	})

	cmd.Flags().StringVar(&opts.SavePath, "save", "", "save file to read the world clock from")
	cmd.Flags().BoolVar(&opts.Slept, "slept", false, "also convert the last-slept time (requires --save)")

	return cmd
}

func runTickConv(opts *TickConvOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Slept && opts.SavePath == "" {
		return newCommandError(ErrCodeInvalidOption, "--slept requires --save", nil)
	}

	var result TickConvResult
	if opts.SavePath != "" {
		img, err := savefile.Load(opts.SavePath)
		if err != nil {
			return newCommandError(ErrCodeSaveFile, "cannot load save file", err)
		}
		clock, err := gametime.ReadWorldClock(img)
		if err != nil {
			return newCommandError(ErrCodeSaveFile, "cannot read world clock", err)
		}
		formatter.VerboseLog("world clock in %s: time=%d last_slept=%d", img.Path, clock.Time, clock.LastSlept)

		result.Breakdown = clock.Current()
		if opts.Slept {
			slept := clock.Slept()
			result.Slept = &slept
		}
		return formatter.Success(result)
	}

	ticks, err := gametime.ParseTicks(args[0])
	if err != nil {
		return numberError("tick count", args[0], err)
	}
	formatter.VerboseLog("tick count %d (0x%x)", ticks, ticks)

	result.Breakdown, err = gametime.Convert(ticks)
	if err != nil {
		if errors.Is(err, gametime.ErrOverflow) {
			return newCommandError(ErrCodeOutOfRange, fmt.Sprintf("tick count %q out of range", args[0]), err)
		}
		return WrapExitError(ExitFailure, "cannot convert tick count", err)
	}

	return formatter.Success(result)
}
