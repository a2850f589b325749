package event

import (
	"fmt"

	"github.com/roach88/baktools/internal/savefile"
)

// ReadFlag returns the flag stored at off in a save image: the 16-bit
// little-endian word at off.Byte, shifted right by off.Bit, low bit only.
func ReadFlag(img *savefile.Image, off Offset) (int, error) {
	word, err := img.Uint16LE(off.Byte)
	if err != nil {
		return 0, fmt.Errorf("event word at 0x%x: %w", off.Byte, err)
	}
	return int((word >> uint(off.Bit)) & 1), nil
}
