package dump

import (
	"encoding/hex"

	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/internal/pool"
	"github.com/arloliu/ringitem/item"
)

// Record is the rendered form of one event.
type Record struct {
	Offset     int              `json:"offset" yaml:"offset"`
	Size       uint32           `json:"size" yaml:"size"`
	TypeID     uint32           `json:"type_id" yaml:"type_id"`
	Kind       string           `json:"kind" yaml:"kind"`
	BodyHeader BodyHeaderRecord `json:"body_header" yaml:"body_header"`

	StateChange *StateChangeRecord `json:"state_change,omitempty" yaml:"state_change,omitempty"`
	Text        *TextRecord        `json:"text,omitempty" yaml:"text,omitempty"`
	RingFormat  *RingFormatRecord  `json:"ring_format,omitempty" yaml:"ring_format,omitempty"`
	Scalers     *ScalersRecord     `json:"scalers,omitempty" yaml:"scalers,omitempty"`
	EventCount  *EventCountRecord  `json:"event_count,omitempty" yaml:"event_count,omitempty"`
	GlomInfo    *GlomInfoRecord    `json:"glom_info,omitempty" yaml:"glom_info,omitempty"`

	PayloadSize int    `json:"payload_size" yaml:"payload_size"`
	Raw         string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// BodyHeaderRecord holds the body header fields; absent fields are nil.
type BodyHeaderRecord struct {
	Size        uint32  `json:"size" yaml:"size"`
	Timestamp   *uint64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	SourceID    *uint32 `json:"source_id,omitempty" yaml:"source_id,omitempty"`
	BarrierType *uint32 `json:"barrier_type,omitempty" yaml:"barrier_type,omitempty"`
}

type StateChangeRecord struct {
	RunNumber     uint32 `json:"run_number" yaml:"run_number"`
	TimeOffset    uint32 `json:"time_offset" yaml:"time_offset"`
	Timestamp     uint32 `json:"timestamp" yaml:"timestamp"`
	OffsetDivisor uint32 `json:"offset_divisor" yaml:"offset_divisor"`
	Title         string `json:"title" yaml:"title"`
}

type TextRecord struct {
	TimeOffset    uint32   `json:"time_offset" yaml:"time_offset"`
	Timestamp     uint32   `json:"timestamp" yaml:"timestamp"`
	StringCount   uint32   `json:"string_count" yaml:"string_count"`
	OffsetDivisor uint32   `json:"offset_divisor" yaml:"offset_divisor"`
	Strings       []string `json:"strings" yaml:"strings"`
}

type RingFormatRecord struct {
	Major uint16 `json:"major" yaml:"major"`
	Minor uint16 `json:"minor" yaml:"minor"`
}

type ScalersRecord struct {
	IntervalStartOffset uint32   `json:"interval_start_offset" yaml:"interval_start_offset"`
	IntervalEndOffset   uint32   `json:"interval_end_offset" yaml:"interval_end_offset"`
	Timestamp           uint32   `json:"timestamp" yaml:"timestamp"`
	IntervalDivisor     uint32   `json:"interval_divisor" yaml:"interval_divisor"`
	ScalerCount         uint32   `json:"scaler_count" yaml:"scaler_count"`
	IsIncremental       bool     `json:"is_incremental" yaml:"is_incremental"`
	Scalers             []uint32 `json:"scalers" yaml:"scalers,flow"`
}

type EventCountRecord struct {
	TimeOffset    uint32 `json:"time_offset" yaml:"time_offset"`
	OffsetDivisor uint32 `json:"offset_divisor" yaml:"offset_divisor"`
	Timestamp     uint32 `json:"timestamp" yaml:"timestamp"`
	EventCount    uint64 `json:"event_count" yaml:"event_count"`
}

type GlomInfoRecord struct {
	CoincidentTicks uint64 `json:"coincident_ticks" yaml:"coincident_ticks"`
	IsBuilding      bool   `json:"is_building" yaml:"is_building"`
	TimestampPolicy uint16 `json:"timestamp_policy" yaml:"timestamp_policy"`
}

// NewRecord decodes ev into a Record.
//
// Strings in the record alias the event buffer; copy them before the buffer
// is released.
//
// Parameters:
//   - ev: The event to render
//   - raw: Whether to include the event bytes in hex
//
// Returns:
//   - Record: Every field of the event
//   - error: Body header, dispatch or text decoding failure
func NewRecord(ev event.Event, raw bool) (Record, error) {
	rec := Record{
		Offset: ev.Offset(),
		Size:   ev.Size(),
		TypeID: ev.TypeID(),
	}

	bh, err := ev.BodyHeader()
	if err != nil {
		return rec, err
	}
	rec.BodyHeader.Size = bh.Size()
	if ts, ok := bh.Timestamp(); ok {
		rec.BodyHeader.Timestamp = &ts
	}
	if id, ok := bh.SourceID(); ok {
		rec.BodyHeader.SourceID = &id
	}
	if bt, ok := bh.BarrierType(); ok {
		rec.BodyHeader.BarrierType = &bt
	}

	ri, err := ev.RingItem()
	if err != nil {
		return rec, err
	}
	rec.Kind = ri.Kind().String()
	rec.PayloadSize = len(ri.Bytes())

	if err := fillItem(&rec, ri); err != nil {
		return rec, err
	}

	if raw {
		bb := pool.GetRawBuffer()
		bb.B = hex.AppendEncode(bb.B, ev.Bytes())
		rec.Raw = string(bb.B)
		pool.PutRawBuffer(bb)
	}

	return rec, nil
}

func fillItem(rec *Record, ri item.RingItem) error {
	switch kind := ri.Kind(); {
	case kind.IsStateChange():
		sc, _ := ri.AsStateChange()
		title, err := sc.Title()
		if err != nil {
			return err
		}
		rec.StateChange = &StateChangeRecord{
			RunNumber:     sc.RunNumber(),
			TimeOffset:    sc.TimeOffset(),
			Timestamp:     sc.Timestamp(),
			OffsetDivisor: sc.OffsetDivisor(),
			Title:         title,
		}
	case kind.IsText():
		txt, _ := ri.AsText()
		strs, err := txt.Strings()
		if err != nil {
			return err
		}
		rec.Text = &TextRecord{
			TimeOffset:    txt.TimeOffset(),
			Timestamp:     txt.Timestamp(),
			StringCount:   txt.StringCount(),
			OffsetDivisor: txt.OffsetDivisor(),
			Strings:       strs,
		}
	case kind == item.KindRingFormat:
		rf, _ := ri.AsRingFormat()
		rec.RingFormat = &RingFormatRecord{Major: rf.Major(), Minor: rf.Minor()}
	case kind == item.KindPeriodicScalers:
		ps, _ := ri.AsPeriodicScalers()
		vals, err := ps.Scalers()
		if err != nil {
			return err
		}
		rec.Scalers = &ScalersRecord{
			IntervalStartOffset: ps.IntervalStartOffset(),
			IntervalEndOffset:   ps.IntervalEndOffset(),
			Timestamp:           ps.Timestamp(),
			IntervalDivisor:     ps.IntervalDivisor(),
			ScalerCount:         ps.ScalerCount(),
			IsIncremental:       ps.IsIncremental(),
			Scalers:             vals,
		}
	case kind == item.KindPhysicsEventCount:
		pc, _ := ri.AsPhysicsEventCount()
		rec.EventCount = &EventCountRecord{
			TimeOffset:    pc.TimeOffset(),
			OffsetDivisor: pc.OffsetDivisor(),
			Timestamp:     pc.Timestamp(),
			EventCount:    pc.EventCount(),
		}
	case kind == item.KindEvbGlomInfo:
		g, _ := ri.AsEvbGlomInfo()
		rec.GlomInfo = &GlomInfoRecord{
			CoincidentTicks: g.CoincidentTicks(),
			IsBuilding:      g.IsBuilding(),
			TimestampPolicy: g.TimestampPolicy(),
		}
	}

	return nil
}
