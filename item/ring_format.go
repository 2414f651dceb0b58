package item

import (
	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/section"
)

// RingFormat is the view of a RingFormat payload: the data format version.
type RingFormat struct {
	data []byte
}

// Bytes returns the payload bytes.
func (f RingFormat) Bytes() []byte {
	return f.data
}

// Major returns the major format version.
func (f RingFormat) Major() uint16 {
	return endian.GetWireEngine().Uint16(f.data[section.RingFormatMajorOffset:])
}

// Minor returns the minor format version.
func (f RingFormat) Minor() uint16 {
	return endian.GetWireEngine().Uint16(f.data[section.RingFormatMinorOffset:])
}
