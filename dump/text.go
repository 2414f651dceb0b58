package dump

import (
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/pool"
)

func field(bb *pool.ByteBuffer, prefix, name string) {
	_, _ = bb.WriteString(prefix)
	_ = bb.WriteByte(' ')
	_, _ = bb.WriteString(name)
	_, _ = bb.WriteString(": ")
}

func uintField(bb *pool.ByteBuffer, prefix, name string, v uint64) {
	field(bb, prefix, name)
	bb.AppendUint(v)
	_ = bb.WriteByte('\n')
}

func boolField(bb *pool.ByteBuffer, prefix, name string, v bool) {
	field(bb, prefix, name)
	if v {
		_, _ = bb.WriteString("true\n")
	} else {
		_, _ = bb.WriteString("false\n")
	}
}

func optionalField[T uint32 | uint64](bb *pool.ByteBuffer, prefix, name string, v *T) {
	if v == nil {
		field(bb, prefix, name)
		_, _ = bb.WriteString("none\n")

		return
	}
	uintField(bb, prefix, name, uint64(*v))
}

// appendText renders rec as "<Variant> <Field>: value" lines followed by a blank line.
func appendText(bb *pool.ByteBuffer, rec *Record) {
	uintField(bb, "Event", "Offset", uint64(rec.Offset)) //nolint: gosec
	uintField(bb, "Event", "Size", uint64(rec.Size))
	field(bb, "Event", "Item Type")
	bb.AppendUint(uint64(rec.TypeID))
	_, _ = bb.WriteString(" (")
	_, _ = bb.WriteString(format.ItemType(rec.TypeID).String())
	_, _ = bb.WriteString(")\n")
	if rec.Raw != "" {
		field(bb, "Event", "Bytes")
		_, _ = bb.WriteString(rec.Raw)
		_ = bb.WriteByte('\n')
	}

	h := &rec.BodyHeader
	uintField(bb, "BodyHeader", "Size", uint64(h.Size))
	optionalField(bb, "BodyHeader", "Timestamp", h.Timestamp)
	optionalField(bb, "BodyHeader", "SourceID", h.SourceID)
	optionalField(bb, "BodyHeader", "Barrier Type", h.BarrierType)

	k := rec.Kind
	switch {
	case rec.StateChange != nil:
		sc := rec.StateChange
		uintField(bb, k, "Run Number", uint64(sc.RunNumber))
		uintField(bb, k, "Time Offset", uint64(sc.TimeOffset))
		uintField(bb, k, "Timestamp", uint64(sc.Timestamp))
		uintField(bb, k, "Offset Divisor", uint64(sc.OffsetDivisor))
		field(bb, k, "Title")
		bb.AppendQuoted(sc.Title)
		_ = bb.WriteByte('\n')
	case rec.Text != nil:
		txt := rec.Text
		uintField(bb, k, "Time Offset", uint64(txt.TimeOffset))
		uintField(bb, k, "Timestamp", uint64(txt.Timestamp))
		uintField(bb, k, "String Count", uint64(txt.StringCount))
		uintField(bb, k, "Offset Divisor", uint64(txt.OffsetDivisor))
		field(bb, k, "Strings")
		_ = bb.WriteByte('[')
		for i, s := range txt.Strings {
			if i > 0 {
				_, _ = bb.WriteString(", ")
			}
			bb.AppendQuoted(s)
		}
		_, _ = bb.WriteString("]\n")
	case rec.RingFormat != nil:
		field(bb, k, "Version")
		bb.AppendUint(uint64(rec.RingFormat.Major))
		_ = bb.WriteByte('.')
		bb.AppendUint(uint64(rec.RingFormat.Minor))
		_ = bb.WriteByte('\n')
	case rec.Scalers != nil:
		ps := rec.Scalers
		uintField(bb, k, "Interval Start Offset", uint64(ps.IntervalStartOffset))
		uintField(bb, k, "Interval End Offset", uint64(ps.IntervalEndOffset))
		uintField(bb, k, "Timestamp", uint64(ps.Timestamp))
		uintField(bb, k, "Interval Divisor", uint64(ps.IntervalDivisor))
		uintField(bb, k, "Scaler Count", uint64(ps.ScalerCount))
		boolField(bb, k, "Is Incremental", ps.IsIncremental)
		field(bb, k, "Scalers")
		_ = bb.WriteByte('[')
		for i, v := range ps.Scalers {
			if i > 0 {
				_, _ = bb.WriteString(", ")
			}
			bb.AppendUint(uint64(v))
		}
		_, _ = bb.WriteString("]\n")
	case rec.EventCount != nil:
		pc := rec.EventCount
		uintField(bb, k, "Time Offset", uint64(pc.TimeOffset))
		uintField(bb, k, "Offset Divisor", uint64(pc.OffsetDivisor))
		uintField(bb, k, "Timestamp", uint64(pc.Timestamp))
		uintField(bb, k, "Event Count", pc.EventCount)
	case rec.GlomInfo != nil:
		g := rec.GlomInfo
		uintField(bb, k, "Coincident Ticks", g.CoincidentTicks)
		boolField(bb, k, "Is Building", g.IsBuilding)
		uintField(bb, k, "Timestamp Policy", uint64(g.TimestampPolicy))
	default:
		uintField(bb, k, "Payload Size", uint64(rec.PayloadSize)) //nolint: gosec
	}

	_ = bb.WriteByte('\n')
}
