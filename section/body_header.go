package section

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/errs"
)

// BodyHeader is a view over the optional metadata block that follows an
// event's length and type fields.
//
// The wire format predates per-event metadata, so the block comes in two
// shapes that must both stay readable:
//
//	size = 0:  | size u32 |                                     (4 bytes)
//	size = 20: | size u32 | timestamp u64 | source u32 | barrier u32 | (20 bytes)
//
// A header of size 0 has no timestamp, source id or barrier type; the
// accessors report them as absent rather than zero.
type BodyHeader struct {
	data []byte // exactly Len() bytes
}

// ParseBodyHeader decodes the body header at the start of b.
// b may extend past the header; only the header bytes are retained.
//
// Returns:
//   - BodyHeader: View over the 4 or 20 header bytes
//   - error: errs.ErrOutOfBounds if b is too short for the declared shape,
//     errs.ErrMalformedFraming if the size is neither 0 nor 20
func ParseBodyHeader(b []byte) (BodyHeader, error) {
	size, err := endian.Uint32(b, 0)
	if err != nil {
		return BodyHeader{}, fmt.Errorf("body header size: %w", err)
	}

	var n int
	switch size {
	case BodyHeaderSizeAbsent:
		n = BodyHeaderSizeField
	case BodyHeaderSizePresent:
		n = BodyHeaderSizePresent
	default:
		return BodyHeader{}, fmt.Errorf("%w: body header size %d, want %d or %d",
			errs.ErrMalformedFraming, size, BodyHeaderSizeAbsent, BodyHeaderSizePresent)
	}

	if err := endian.CheckBounds(b, 0, n); err != nil {
		return BodyHeader{}, fmt.Errorf("body header: %w", err)
	}

	return BodyHeader{data: b[:n:n]}, nil
}

// Bytes returns the raw header bytes (4 or 20).
func (h BodyHeader) Bytes() []byte {
	return h.data
}

// Size returns the declared header size, 0 or 20.
func (h BodyHeader) Size() uint32 {
	if len(h.data) < BodyHeaderSizeField {
		return 0
	}

	return endian.GetWireEngine().Uint32(h.data)
}

// Len returns the number of event bytes the header occupies: 4 when no
// fields are present, 20 otherwise.
func (h BodyHeader) Len() int {
	return len(h.data)
}

// Present reports whether the header carries timestamp, source id and barrier type.
func (h BodyHeader) Present() bool {
	return len(h.data) == BodyHeaderSizePresent
}

// Timestamp returns the event timestamp, if present.
func (h BodyHeader) Timestamp() (uint64, bool) {
	if !h.Present() {
		return 0, false
	}

	return endian.GetWireEngine().Uint64(h.data[BodyHeaderTimestampOffset:]), true
}

// SourceID returns the id of the producing data source, if present.
func (h BodyHeader) SourceID() (uint32, bool) {
	if !h.Present() {
		return 0, false
	}

	return endian.GetWireEngine().Uint32(h.data[BodyHeaderSourceIDOffset:]), true
}

// BarrierType returns the event builder barrier tag, if present.
func (h BodyHeader) BarrierType() (uint32, bool) {
	if !h.Present() {
		return 0, false
	}

	return endian.GetWireEngine().Uint32(h.data[BodyHeaderBarrierTypeOffset:]), true
}
