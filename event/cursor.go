package event

import (
	"iter"

	"github.com/arloliu/ringitem/errs"
)

// Cursor produces the events of a buffer in order.
//
// Iteration ends when the buffer is exhausted or at the first framing failure.
// A failure is kept in Err and the cursor produces nothing after it, since a
// corrupt length leaves no trustworthy position to resume from.
//
// Note: The Cursor is NOT reusable. Construct a new cursor over the same
// buffer to iterate again.
type Cursor struct {
	data []byte
	off  int
	cur  Event
	err  error
	done bool
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Next advances to the next event. It returns false at the end of the buffer
// or after a failure; check Err to tell them apart.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	if c.off >= len(c.data) {
		c.done = true
		c.cur = Event{}

		return false
	}

	ev, err := frameAt(c.data, c.off)
	if err != nil {
		c.err = errs.At(c.off, err)
		c.done = true
		c.cur = Event{}

		return false
	}

	c.off += ev.Len()
	c.cur = ev

	return true
}

// Event returns the event produced by the last successful Next.
func (c *Cursor) Event() Event {
	return c.cur
}

// Err returns the failure that stopped iteration, wrapped in *errs.PositionError.
func (c *Cursor) Err() error {
	return c.err
}

// Offset returns the buffer position the next event will be read from.
func (c *Cursor) Offset() int {
	return c.off
}

// All returns an iterator over the remaining events. A failure is yielded
// once, as the final pair, with a zero Event.
//
// Example:
//
//	for ev, err := range cur.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ev.ItemType())
//	}
func (c *Cursor) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for c.Next() {
			if !yield(c.cur, nil) {
				return
			}
		}

		if c.err != nil {
			yield(Event{}, c.err)
		}
	}
}
