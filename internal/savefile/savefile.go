package savefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/lunixbochs/struc"
)

// ErrOutOfRange is returned when a read would extend past the end of the image.
var ErrOutOfRange = errors.New("offset out of range")

var unpackOptions = struc.Options{Order: binary.LittleEndian}

// Image is an in-memory save-game image.
type Image struct {
	Path string // source path, empty for images built from bytes
	data []byte
}

// New wraps raw save bytes. The slice is not copied.
func New(data []byte) *Image {
	return &Image{data: data}
}

// Load reads a save file from disk.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return &Image{Path: path, data: data}, nil
}

// Len returns the image size in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// ReadAt decodes v (a pointer to a struc-tagged struct) from the image
// starting at offset.
func (img *Image) ReadAt(offset int64, v any) error {
	size, err := struc.Sizeof(v)
	if err != nil {
		return fmt.Errorf("sizeof %T: %w", v, err)
	}
	if offset < 0 || offset+int64(size) > int64(len(img.data)) {
		return fmt.Errorf("read %d bytes at 0x%x of %d-byte image: %w", size, offset, len(img.data), ErrOutOfRange)
	}
	r := bytes.NewReader(img.data[offset : offset+int64(size)])
	if err := struc.UnpackWithOptions(r, v, &unpackOptions); err != nil {
		return fmt.Errorf("unpack %T at 0x%x: %w", v, offset, err)
	}
	return nil
}

type word struct {
	Value uint16 `struc:"uint16,little"`
}

// Uint16LE returns the little-endian uint16 at offset.
func (img *Image) Uint16LE(offset int64) (uint16, error) {
	var w word
	if err := img.ReadAt(offset, &w); err != nil {
		return 0, err
	}
	return w.Value, nil
}
