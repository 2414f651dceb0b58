package endian

import (
	"fmt"

	"github.com/arloliu/ringitem/errs"
)

// Field widths supported by Field.
const (
	Width8  = 1
	Width16 = 2
	Width32 = 4
	Width64 = 8
)

// Field returns the little-endian unsigned integer of the given width at off.
//
// Parameters:
//   - b: Source buffer
//   - off: Byte offset of the field
//   - width: Field width in bytes, one of 1, 2, 4 or 8
//
// Returns:
//   - uint64: The decoded value, zero-extended
//   - error: errs.ErrOutOfBounds if off+width exceeds len(b),
//     errs.ErrInvalidFieldWidth for any other width
func Field(b []byte, off, width int) (uint64, error) {
	switch width {
	case Width8:
		v, err := Uint8(b, off)
		return uint64(v), err
	case Width16:
		v, err := Uint16(b, off)
		return uint64(v), err
	case Width32:
		v, err := Uint32(b, off)
		return uint64(v), err
	case Width64:
		return Uint64(b, off)
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidFieldWidth, width)
	}
}

// Uint8 returns the byte at off.
func Uint8(b []byte, off int) (uint8, error) {
	if err := CheckBounds(b, off, Width8); err != nil {
		return 0, err
	}

	return b[off], nil
}

// Uint16 returns the little-endian uint16 at off.
func Uint16(b []byte, off int) (uint16, error) {
	if err := CheckBounds(b, off, Width16); err != nil {
		return 0, err
	}

	return wire.Uint16(b[off:]), nil
}

// Uint32 returns the little-endian uint32 at off.
func Uint32(b []byte, off int) (uint32, error) {
	if err := CheckBounds(b, off, Width32); err != nil {
		return 0, err
	}

	return wire.Uint32(b[off:]), nil
}

// Uint64 returns the little-endian uint64 at off.
func Uint64(b []byte, off int) (uint64, error) {
	if err := CheckBounds(b, off, Width64); err != nil {
		return 0, err
	}

	return wire.Uint64(b[off:]), nil
}

// CheckBounds reports whether n bytes starting at off fit inside b.
// It returns an error wrapping errs.ErrOutOfBounds when they don't.
func CheckBounds(b []byte, off, n int) error {
	// off+n is compared as a difference so a huge n cannot overflow.
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return fmt.Errorf("%w: %d bytes at offset %d, buffer length %d", errs.ErrOutOfBounds, n, off, len(b))
	}

	return nil
}
