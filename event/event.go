package event

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/item"
	"github.com/arloliu/ringitem/section"
)

// Event is a view over one self-delimited record.
type Event struct {
	data   []byte // exactly Size() bytes
	offset int    // position of data in the source buffer
}

// New returns the event framed at the start of b.
// Bytes of b past the event's declared length are not part of the event.
//
// Returns:
//   - Event: View over the event's bytes
//   - error: errs.ErrOutOfBounds if b cannot hold the length field,
//     errs.ErrMalformedFraming if the length is below the minimum framing,
//     errs.ErrTruncated if b is shorter than the declared length
func New(b []byte) (Event, error) {
	return frameAt(b, 0)
}

// frameAt validates the framing of the event starting at off.
func frameAt(buf []byte, off int) (Event, error) {
	length, err := endian.Uint32(buf, off+section.LengthOffset)
	if err != nil {
		return Event{}, fmt.Errorf("event length: %w", err)
	}

	// Zero is the common corruption; it would never advance a cursor.
	if length < section.MinEventSize {
		return Event{}, fmt.Errorf("%w: event length %d below minimum %d",
			errs.ErrMalformedFraming, length, section.MinEventSize)
	}

	remaining := len(buf) - off
	if uint64(length) > uint64(remaining) {
		return Event{}, fmt.Errorf("%w: event length %d, %d bytes remain",
			errs.ErrTruncated, length, remaining)
	}

	end := off + int(length)

	return Event{data: buf[off:end:end], offset: off}, nil
}

// Bytes returns the raw event bytes, framing included.
func (e Event) Bytes() []byte {
	return e.data
}

// Size returns the declared event length. It always equals len(Bytes()).
// The zero Event has size 0.
func (e Event) Size() uint32 {
	if len(e.data) < section.FrameSize {
		return 0
	}

	return endian.GetWireEngine().Uint32(e.data[section.LengthOffset:])
}

// Len returns the event length as an int.
func (e Event) Len() int {
	return len(e.data)
}

// TypeID returns the raw item type identifier, or 0 for the zero Event.
func (e Event) TypeID() uint32 {
	if len(e.data) < section.FrameSize {
		return 0
	}

	return endian.GetWireEngine().Uint32(e.data[section.TypeOffset:])
}

// ItemType returns the item type identifier.
func (e Event) ItemType() format.ItemType {
	return format.ItemType(e.TypeID())
}

// Offset returns the position of the event in the buffer it was read from.
func (e Event) Offset() int {
	return e.offset
}

// BodyHeader decodes the body header that follows the length and type fields.
func (e Event) BodyHeader() (section.BodyHeader, error) {
	if len(e.data) < section.BodyHeaderOffset {
		return section.ParseBodyHeader(nil)
	}

	return section.ParseBodyHeader(e.data[section.BodyHeaderOffset:])
}

// Payload returns the bytes after the body header.
func (e Event) Payload() ([]byte, error) {
	bh, err := e.BodyHeader()
	if err != nil {
		return nil, err
	}

	return e.data[section.BodyHeaderOffset+bh.Len():], nil
}

// RingItem decodes the body header and dispatches the payload on the event's type.
//
// Returns:
//   - item.RingItem: The tagged payload view
//   - error: Body header failures (errs.ErrMalformedFraming, errs.ErrOutOfBounds)
//     or dispatch failures (errs.ErrUnknownItemType, errs.ErrOutOfBounds)
func (e Event) RingItem() (item.RingItem, error) {
	payload, err := e.Payload()
	if err != nil {
		return item.RingItem{}, err
	}

	return item.New(e.TypeID(), payload)
}
