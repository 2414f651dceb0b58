// Package ringitem decodes the "ring item" event stream written by
// data-acquisition systems into zero-copy views.
//
// A ring item buffer is a sequence of self-delimited events, each carrying a
// length, a type identifier, an optional body header and a type-specific
// payload. Decoding never copies: every view returned by this module is a
// sub-slice of the caller's buffer.
//
// # Core Features
//
//   - Cursor over events with strict framing validation
//   - Body header decoding with absent/present fields reported as (value, ok)
//   - Tagged dispatch of 15 item variants onto 13 payload shapes
//   - Typed failures (errs.ErrTruncated, errs.ErrMalformedFraming, ...) instead of panics
//
// # Basic Usage
//
// Iterating a buffer, typically a memory-mapped file (see package source):
//
//	cur := ringitem.NewCursor(buf)
//	for cur.Next() {
//	    ev := cur.Event()
//	    ri, err := ev.RingItem()
//	    if err != nil {
//	        return err
//	    }
//	    if sc, ok := ri.AsBeginRun(); ok {
//	        title, _ := sc.Title()
//	        fmt.Println(sc.RunNumber(), title)
//	    }
//	}
//	if err := cur.Err(); err != nil {
//	    return err
//	}
//
// Or with range-over-func:
//
//	for ev, err := range ringitem.Events(buf) {
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the event
// package. The views themselves live in event (Event, Cursor), section
// (BodyHeader) and item (RingItem and payload shapes).
//
// The buffer must stay valid and unmodified while any view derived from it
// is reachable.
package ringitem

import (
	"iter"

	"github.com/arloliu/ringitem/event"
)

// NewCursor creates a cursor over the events of buf.
//
// Parameters:
//   - buf: The raw event stream
//
// Returns:
//   - *event.Cursor: Cursor positioned at the first event
func NewCursor(buf []byte) *event.Cursor {
	return event.NewCursor(buf)
}

// Events returns an iterator over the events of buf. A framing failure is
// yielded once, as the last pair.
func Events(buf []byte) iter.Seq2[event.Event, error] {
	return event.NewCursor(buf).All()
}

// Collect decodes every event of buf into a slice.
//
// The events preceding a failure are returned along with it, so a caller can
// still use the intact prefix of a truncated file.
//
// Returns:
//   - []event.Event: Events in buffer order
//   - error: The framing failure that stopped decoding, wrapped in *errs.PositionError
func Collect(buf []byte) ([]event.Event, error) {
	var events []event.Event

	cur := event.NewCursor(buf)
	for cur.Next() {
		events = append(events, cur.Event())
	}

	return events, cur.Err()
}
