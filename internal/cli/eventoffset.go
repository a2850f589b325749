package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/baktools/internal/event"
	"github.com/roach88/baktools/internal/savefile"
)

// EventOffsetOptions holds flags for the eventoffset command.
type EventOffsetOptions struct {
	*RootOptions
	Mode     string
	SavePath string
}

// EventOffsetResult is the located event flag.
type EventOffsetResult struct {
	Event   int64  `json:"event"`
	Byte    int64  `json:"byte"`
	ByteHex string `json:"byte_hex"`
	Bit     int64  `json:"bit"`
	Mode    string `json:"mode"`
	Value   *int   `json:"value,omitempty"` // set when read from a save file
}

func (r EventOffsetResult) String() string {
	s := fmt.Sprintf("Event: %d byte: %s bit: %d", r.Event, r.ByteHex, r.Bit)
	if r.Value != nil {
		s += fmt.Sprintf(" value: %d", *r.Value)
	}
	return s
}

// NewEventOffsetCommand creates the eventoffset tool command.
func NewEventOffsetCommand() *cobra.Command {
	rootOpts := &RootOptions{}
	opts := &EventOffsetOptions{RootOptions: rootOpts}

	cmd := newToolCommand(rootOpts, &cobra.Command{
		Use:   "eventoffset <event-ptr>",
		Short: "Locate an event flag in the save-game event table",
		Long: `Locate an event flag in the save-game event table.

Decodes a base-10 event pointer into the byte offset (hex) and bit index
of its flag:

  byte = ((ptr >> 3) & 0xfffe) + 0x6e2
  bit  = ptr & 0xf

Example:
  eventoffset 100
  Event: 100 byte: 6ee bit: 4`,
		Args: exactlyOneArg("event pointer"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEventOffset(opts, args[0], cmd)
		},
	})

	cmd.Flags().StringVar(&opts.Mode, "mode", string(event.ModeSimple), "offset formula (simple|complex|auto)")
	cmd.Flags().StringVar(&opts.SavePath, "save", "", "save file to read the flag value from")

	return cmd
}

func runEventOffset(opts *EventOffsetOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	mode, err := event.ParseMode(opts.Mode)
	if err != nil {
		return newCommandError(ErrCodeInvalidOption, "invalid --mode", err)
	}

	ptr, err := event.ParsePointer(arg)
	if err != nil {
		return numberError("event pointer", arg, err)
	}

	off, used, err := event.Resolve(ptr, mode)
	if err != nil {
		return newCommandError(ErrCodeInvalidOption, "invalid --mode", err)
	}
	formatter.VerboseLog("event pointer %d (0x%x) resolved to %s with %s formula", ptr, ptr, off, used)

	result := EventOffsetResult{
		Event:   ptr,
		Byte:    off.Byte,
		ByteHex: strconv.FormatInt(off.Byte, 16),
		Bit:     off.Bit,
		Mode:    string(used),
	}

	if opts.SavePath != "" {
		img, err := savefile.Load(opts.SavePath)
		if err != nil {
			return newCommandError(ErrCodeSaveFile, "cannot load save file", err)
		}
		formatter.VerboseLog("loaded %d-byte save %s", img.Len(), img.Path)

		value, err := event.ReadFlag(img, off)
		if err != nil {
			return newCommandError(ErrCodeSaveFile, "cannot read event flag", err)
		}
		result.Value = &value
	}

	return formatter.Success(result)
}

// numberError maps a strconv parse failure to a command error.
func numberError(name, arg string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return newCommandError(ErrCodeOutOfRange, fmt.Sprintf("%s %q out of range", name, arg), err)
	}
	return newCommandError(ErrCodeInvalidNumber, fmt.Sprintf("invalid %s %q", name, arg), err)
}
