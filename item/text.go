package item

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/section"
)

// Text is the view of PacketTypes and MonitoredVariables payloads: a header
// followed by a run of NUL-separated strings.
//
// Layout:
//
//	| time offset u32 | timestamp u32 | string count u32 | offset divisor u32 | strings... |
type Text struct {
	data []byte
}

// Bytes returns the payload bytes.
func (t Text) Bytes() []byte {
	return t.data
}

// TimeOffset returns the time since the start of the run, in OffsetDivisor units.
func (t Text) TimeOffset() uint32 {
	return t.u32(section.TextTimeOffsetOffset)
}

// Timestamp returns the wall-clock time the item was written.
func (t Text) Timestamp() uint32 {
	return t.u32(section.TextTimestampOffset)
}

// StringCount returns the declared number of strings.
func (t Text) StringCount() uint32 {
	return t.u32(section.TextStringCountOffset)
}

// OffsetDivisor returns the divisor that scales TimeOffset.
func (t Text) OffsetDivisor() uint32 {
	return t.u32(section.TextOffsetDivisorOffset)
}

// StringsBytes returns the raw string region.
func (t Text) StringsBytes() []byte {
	return t.data[section.TextStringsOffset:]
}

// Strings returns exactly StringCount strings split from the string region.
//
// The returned strings alias the event buffer.
//
// Returns:
//   - []string: The strings in wire order
//   - error: errs.ErrMalformedText if the region ends before StringCount
//     strings are found or a string is not valid UTF-8
func (t Text) Strings() ([]string, error) {
	strs, err := splitCStrings(t.StringsBytes(), t.StringCount())
	if err != nil {
		return nil, fmt.Errorf("string list: %w", err)
	}

	return strs, nil
}

func (t Text) u32(off int) uint32 {
	return endian.GetWireEngine().Uint32(t.data[off:])
}
