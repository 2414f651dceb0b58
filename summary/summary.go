// Package summary computes an overview of an event stream: counts and bytes
// per item type, run numbers, sources and a content fingerprint.
package summary

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/hash"
	"github.com/arloliu/ringitem/item"
)

// TypeStats counts the events of one item type.
type TypeStats struct {
	Type   format.ItemType
	Events uint64
	Bytes  uint64
}

// Run describes one run seen in the stream.
type Run struct {
	Number uint32
	Title  string
	Ended  bool
}

// Summary is the result of a Collector.
type Summary struct {
	Events            uint64
	Bytes             uint64
	Types             []TypeStats // ordered by type id
	Runs              []Run       // in order of their begin events
	Sources           []uint32    // distinct body header source ids, ascending
	WithoutBodyHeader uint64
	FormatMajor       uint16
	FormatMinor       uint16
	HasFormat         bool
	Digest            uint64
}

// Collector accumulates a Summary over one or more buffers.
type Collector struct {
	types     map[format.ItemType]*TypeStats
	runs      []Run
	sources   map[uint32]struct{}
	bytes     uint64
	noHeader  uint64
	major     uint16
	minor     uint16
	hasFormat bool
	digest    *hash.Digest
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		types:   make(map[format.ItemType]*TypeStats),
		sources: make(map[uint32]struct{}),
		digest:  hash.NewDigest(),
	}
}

// Add records one event. Only the body header and the payloads of run state
// changes and ring format items are decoded; other payloads are counted
// without being dispatched, so unknown item types do not fail.
// A failing event leaves the collector unchanged.
func (c *Collector) Add(ev event.Event) error {
	bh, err := ev.BodyHeader()
	if err != nil {
		return err
	}

	typ := ev.ItemType()
	var (
		sc item.StateChange
		rf item.RingFormat
	)
	switch {
	case typ == format.BeginRun || typ == format.EndRun || typ == format.AbnormalEndRun:
		ri, err := ev.RingItem()
		if err != nil {
			return err
		}
		sc, _ = ri.AsStateChange()
	case typ == format.RingFormat:
		ri, err := ev.RingItem()
		if err != nil {
			return err
		}
		rf, _ = ri.AsRingFormat()
	}

	var title string
	if typ == format.BeginRun {
		if title, err = sc.Title(); err != nil {
			return err
		}
	}

	st, ok := c.types[typ]
	if !ok {
		st = &TypeStats{Type: typ}
		c.types[typ] = st
	}
	st.Events++
	st.Bytes += uint64(ev.Size())
	c.bytes += uint64(ev.Size())
	c.digest.Add(ev.Bytes())

	if id, ok := bh.SourceID(); ok {
		c.sources[id] = struct{}{}
	} else {
		c.noHeader++
	}

	switch {
	case typ == format.BeginRun:
		// The title aliases the event buffer, which may be unmapped before
		// the summary is used.
		c.runs = append(c.runs, Run{Number: sc.RunNumber(), Title: strings.Clone(title)})
	case typ == format.EndRun || typ == format.AbnormalEndRun:
		c.endRun(sc.RunNumber())
	case typ == format.RingFormat:
		c.major, c.minor, c.hasFormat = rf.Major(), rf.Minor(), true
	}

	return nil
}

func (c *Collector) endRun(number uint32) {
	for i := len(c.runs) - 1; i >= 0; i-- {
		if c.runs[i].Number == number {
			c.runs[i].Ended = true
			return
		}
	}
	// An end without a begin: the file starts mid-run.
	c.runs = append(c.runs, Run{Number: number, Ended: true})
}

// AddBuffer records every event of buf.
//
// Returns:
//   - error: The first framing or decoding failure, wrapped in *errs.PositionError
func (c *Collector) AddBuffer(buf []byte) error {
	cur := event.NewCursor(buf)
	for cur.Next() {
		ev := cur.Event()
		if err := c.Add(ev); err != nil {
			return errs.At(ev.Offset(), err)
		}
	}

	return cur.Err()
}

// Reset clears the collector for the next stream.
func (c *Collector) Reset() {
	clear(c.types)
	clear(c.sources)
	c.runs = nil
	c.bytes, c.noHeader = 0, 0
	c.major, c.minor, c.hasFormat = 0, 0, false
	c.digest.Reset()
}

// Summary returns a snapshot of the accumulated state.
func (c *Collector) Summary() Summary {
	s := Summary{
		Events:            c.digest.Count(),
		Bytes:             c.bytes,
		Runs:              slices.Clone(c.runs),
		WithoutBodyHeader: c.noHeader,
		FormatMajor:       c.major,
		FormatMinor:       c.minor,
		HasFormat:         c.hasFormat,
		Digest:            c.digest.Sum64(),
	}

	s.Types = make([]TypeStats, 0, len(c.types))
	for _, st := range c.types {
		s.Types = append(s.Types, *st)
	}
	slices.SortFunc(s.Types, func(a, b TypeStats) int { return cmp.Compare(a.Type, b.Type) })

	s.Sources = make([]uint32, 0, len(c.sources))
	for id := range c.sources {
		s.Sources = append(s.Sources, id)
	}
	slices.Sort(s.Sources)

	return s
}

// WriteText writes a human readable report of s.
func (s Summary) WriteText(w io.Writer) error {
	p := &printer{w: w}

	p.printf("events:  %s (%s)\n", humanize.Comma(int64(s.Events)), humanize.IBytes(s.Bytes)) //nolint: gosec
	if s.HasFormat {
		p.printf("format:  %d.%d\n", s.FormatMajor, s.FormatMinor)
	}
	p.printf("digest:  %016x\n", s.Digest)
	p.printf("sources: %v (%s events without body header)\n", s.Sources, humanize.Comma(int64(s.WithoutBodyHeader))) //nolint: gosec

	for _, r := range s.Runs {
		state := "open"
		if r.Ended {
			state = "ended"
		}
		p.printf("run %d: %q %s\n", r.Number, r.Title, state)
	}

	p.printf("%-20s %12s %12s\n", "type", "events", "bytes")
	for _, st := range s.Types {
		p.printf("%-20s %12s %12s\n", st.Type, humanize.Comma(int64(st.Events)), humanize.IBytes(st.Bytes)) //nolint: gosec
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(layout string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, layout, args...)
}
