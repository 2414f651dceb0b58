package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/internal/options"
	"github.com/arloliu/ringitem/internal/pool"
)

// Writer renders events to an io.Writer.
type Writer struct {
	w       io.Writer
	cfg     *config
	yaml    *yaml.Encoder
	json    *json.Encoder
	written int
}

// NewWriter creates a Writer.
//
// Parameters:
//   - w: Destination of the rendered events
//   - opts: Optional configuration (WithFormat, WithTypes, WithRaw)
//
// Returns:
//   - *Writer: The writer; call Close to flush YAML output
//   - error: An invalid option value
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg := &config{format: FormatText}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d := &Writer{w: w, cfg: cfg}
	switch cfg.format {
	case FormatYAML:
		d.yaml = yaml.NewEncoder(w)
		d.yaml.SetIndent(2)
	case FormatJSON:
		d.json = json.NewEncoder(w)
	}

	return d, nil
}

// Written returns the number of events rendered so far.
func (d *Writer) Written() int {
	return d.written
}

// Accepts reports whether events of ev's type pass the type filter.
func (d *Writer) Accepts(ev event.Event) bool {
	if d.cfg.types == nil {
		return true
	}
	_, ok := d.cfg.types[ev.ItemType()]

	return ok
}

// Write renders one event. Events excluded by the type filter are skipped
// without being decoded.
//
// Returns:
//   - bool: Whether the event was rendered
//   - error: Decoding or output failure
func (d *Writer) Write(ev event.Event) (bool, error) {
	if !d.Accepts(ev) {
		return false, nil
	}

	rec, err := NewRecord(ev, d.cfg.raw)
	if err != nil {
		return false, errs.At(ev.Offset(), err)
	}

	switch d.cfg.format {
	case FormatYAML:
		err = d.yaml.Encode(&rec)
	case FormatJSON:
		err = d.json.Encode(&rec)
	default:
		bb := pool.GetRecordBuffer()
		appendText(bb, &rec)
		_, err = bb.WriteTo(d.w)
		pool.PutRecordBuffer(bb)
	}
	if err != nil {
		return false, fmt.Errorf("write %s record: %w", d.cfg.format, err)
	}
	d.written++

	return true, nil
}

// WriteAll renders every event of buf, stopping at the first failure.
//
// Returns:
//   - int: Number of events rendered from buf
//   - error: Framing, decoding or output failure
func (d *Writer) WriteAll(buf []byte) (int, error) {
	n := 0
	cur := event.NewCursor(buf)
	for cur.Next() {
		ok, err := d.Write(cur.Event())
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}

	return n, cur.Err()
}

// Close flushes buffered output. It does not close the underlying writer.
func (d *Writer) Close() error {
	if d.yaml != nil {
		return d.yaml.Close()
	}

	return nil
}
