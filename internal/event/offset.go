package event

import (
	"fmt"

	"github.com/roach88/baktools/internal/numeric"
)

// Save-file layout of the event tables.
const (
	RecordOffset        = 0x6e2
	ComplexRecordOffset = 0xb09

	// ComplexThreshold is the first pointer the game resolves through the
	// complex table.
	ComplexThreshold = 0xdac0

	complexBias = 0x2540
)

// Mode selects the offset formula.
type Mode string

const (
	ModeSimple  Mode = "simple"
	ModeComplex Mode = "complex"
	ModeAuto    Mode = "auto" // complex at or above ComplexThreshold
)

// ValidModes lists the accepted --mode values.
var ValidModes = []Mode{ModeSimple, ModeComplex, ModeAuto}

// Offset is the location of a single event flag.
type Offset struct {
	Byte int64 // absolute byte offset of the 16-bit word holding the flag
	Bit  int64 // bit index within that word
}

func (o Offset) String() string {
	return fmt.Sprintf("byte: %x bit: %d", o.Byte, o.Bit)
}

// CalculateOffset decodes ptr against the event table.
//
// The shift drops three bits and the mask then clears the lowest bit of the
// result, so bit 3 of ptr contributes to neither field.
func CalculateOffset(ptr int64) Offset {
	return Offset{
		Byte: (0xfffe & (ptr >> 3)) + RecordOffset,
		Bit:  ptr & 0xf,
	}
}

// CalculateComplexOffset decodes ptr against the complex event table,
// which packs ten flags per byte index.
func CalculateComplexOffset(ptr int64) Offset {
	source := (ptr + complexBias) & 0xffff
	bit := int64(0)
	if source%10 != 0 {
		bit = source%10 - 1
	}
	return Offset{
		Byte: source/10 + ComplexRecordOffset,
		Bit:  bit,
	}
}

// Resolve applies the formula selected by mode and reports which formula
// was used. ModeAuto resolves to ModeSimple or ModeComplex.
func Resolve(ptr int64, mode Mode) (Offset, Mode, error) {
	switch mode {
	case ModeSimple:
		return CalculateOffset(ptr), ModeSimple, nil
	case ModeComplex:
		return CalculateComplexOffset(ptr), ModeComplex, nil
	case ModeAuto:
		if ptr >= ComplexThreshold {
			return CalculateComplexOffset(ptr), ModeComplex, nil
		}
		return CalculateOffset(ptr), ModeSimple, nil
	default:
		return Offset{}, "", fmt.Errorf("unknown mode %q: must be one of %v", mode, ValidModes)
	}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range ValidModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q: must be one of %v", s, ValidModes)
}

// ParsePointer parses a base-10 event pointer.
// Errors are *strconv.NumError, so strconv.ErrSyntax and strconv.ErrRange
// can be told apart with errors.Is.
func ParsePointer(s string) (int64, error) {
	return numeric.ParseInt(s)
}
