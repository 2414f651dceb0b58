// Package event walks a ring item buffer and exposes each event as a view.
//
// A Cursor is a single-pass, forward-only producer over a caller-owned buffer:
//
//	cur := event.NewCursor(buf)
//	for cur.Next() {
//	    ev := cur.Event()
//	    fmt.Println(ev.Size(), ev.ItemType())
//	}
//	if err := cur.Err(); err != nil {
//	    // framing failure; no further events are produced
//	}
//
// or with range-over-func:
//
//	for ev, err := range event.NewCursor(buf).All() {
//	    if err != nil {
//	        return err
//	    }
//	    ri, err := ev.RingItem()
//	    ...
//	}
//
// The cursor only validates framing (the length field). Body headers and
// payloads are decoded lazily when Event.BodyHeader or Event.RingItem is
// called, so a malformed payload fails that call without stopping iteration.
//
// # Thread Safety
//
// A Cursor must be used by a single goroutine. Events and every view derived
// from them are immutable and may be shared freely, as long as the underlying
// buffer is neither modified nor unmapped.
package event
