// Package ringtest builds framed ring item buffers for tests and demos.
package ringtest

import (
	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/section"
)

// Header holds the fields of a full (20-byte) body header.
type Header struct {
	Timestamp   uint64
	SourceID    uint32
	BarrierType uint32
}

// Builder appends framed events to a buffer.
type Builder struct {
	engine endian.EndianEngine
	buf    []byte
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{engine: endian.GetLittleEndianEngine()}
}

// Bytes returns the accumulated buffer.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Event appends one event. A nil hdr writes a size-0 body header.
func (b *Builder) Event(typ format.ItemType, hdr *Header, payload []byte) *Builder {
	hdrLen := section.BodyHeaderSizeField
	if hdr != nil {
		hdrLen = section.BodyHeaderSizePresent
	}
	length := section.FrameSize + hdrLen + len(payload)

	b.buf = b.engine.AppendUint32(b.buf, uint32(length)) //nolint: gosec
	b.buf = b.engine.AppendUint32(b.buf, uint32(typ))
	if hdr == nil {
		b.buf = b.engine.AppendUint32(b.buf, section.BodyHeaderSizeAbsent)
	} else {
		b.buf = b.engine.AppendUint32(b.buf, section.BodyHeaderSizePresent)
		b.buf = b.engine.AppendUint64(b.buf, hdr.Timestamp)
		b.buf = b.engine.AppendUint32(b.buf, hdr.SourceID)
		b.buf = b.engine.AppendUint32(b.buf, hdr.BarrierType)
	}
	b.buf = append(b.buf, payload...)

	return b
}

// Raw appends bytes verbatim, for corrupt framing cases.
func (b *Builder) Raw(data []byte) *Builder {
	b.buf = append(b.buf, data...)
	return b
}

// Frame appends a length and type field followed by rest, without checking
// that length matches.
func (b *Builder) Frame(length, typ uint32, rest []byte) *Builder {
	b.buf = b.engine.AppendUint32(b.buf, length)
	b.buf = b.engine.AppendUint32(b.buf, typ)
	b.buf = append(b.buf, rest...)

	return b
}

// StateChange encodes a run state change payload. The title is NUL-padded to
// 80 bytes and truncated to 79 if longer.
func StateChange(run, timeOffset, timestamp, divisor uint32, title string) []byte {
	e := endian.GetLittleEndianEngine()
	p := make([]byte, 0, section.StateChangeSize)
	p = e.AppendUint32(p, run)
	p = e.AppendUint32(p, timeOffset)
	p = e.AppendUint32(p, timestamp)
	p = e.AppendUint32(p, divisor)

	var t [section.StateChangeTitleSize]byte
	copy(t[:section.StateChangeTitleSize-1], title)

	return append(p, t[:]...)
}

// Text encodes a string list payload with every string NUL-terminated.
func Text(timeOffset, timestamp, divisor uint32, strs ...string) []byte {
	e := endian.GetLittleEndianEngine()
	p := e.AppendUint32(nil, timeOffset)
	p = e.AppendUint32(p, timestamp)
	p = e.AppendUint32(p, uint32(len(strs))) //nolint: gosec
	p = e.AppendUint32(p, divisor)
	for _, s := range strs {
		p = append(p, s...)
		p = append(p, 0)
	}

	return p
}

// RingFormat encodes a format version payload.
func RingFormat(major, minor uint16) []byte {
	e := endian.GetLittleEndianEngine()
	return e.AppendUint16(e.AppendUint16(nil, major), minor)
}

// Scalers encodes a periodic scaler payload.
func Scalers(start, end, timestamp, divisor uint32, incremental bool, values ...uint32) []byte {
	e := endian.GetLittleEndianEngine()
	p := e.AppendUint32(nil, start)
	p = e.AppendUint32(p, end)
	p = e.AppendUint32(p, timestamp)
	p = e.AppendUint32(p, divisor)
	p = e.AppendUint32(p, uint32(len(values))) //nolint: gosec
	var inc uint32
	if incremental {
		inc = 1
	}
	p = e.AppendUint32(p, inc)
	for _, v := range values {
		p = e.AppendUint32(p, v)
	}

	return p
}

// EventCount encodes a physics event count payload.
func EventCount(timeOffset, divisor, timestamp uint32, count uint64) []byte {
	e := endian.GetLittleEndianEngine()
	p := e.AppendUint32(nil, timeOffset)
	p = e.AppendUint32(p, divisor)
	p = e.AppendUint32(p, timestamp)

	return e.AppendUint64(p, count)
}

// GlomInfo encodes an event builder glom payload.
func GlomInfo(ticks uint64, building bool, policy uint16) []byte {
	e := endian.GetLittleEndianEngine()
	p := e.AppendUint64(nil, ticks)
	var b uint16
	if building {
		b = 1
	}
	p = e.AppendUint16(p, b)

	return e.AppendUint16(p, policy)
}

// Run builds a small but complete run: format, begin, packet types, scalers
// from two sources, physics events, an event count, and end.
func Run(run uint32) []byte {
	src1 := &Header{Timestamp: 100, SourceID: 1}
	src2 := &Header{Timestamp: 101, SourceID: 2}

	return NewBuilder().
		Event(format.RingFormat, nil, RingFormat(11, 0)).
		Event(format.BeginRun, src1, StateChange(run, 0, 1700000000, 1, "test run")).
		Event(format.PacketTypes, nil, Text(0, 1700000000, 1, "adc", "tdc")).
		Event(format.PhysicsEvent, src1, []byte{1, 2, 3, 4}).
		Event(format.PeriodicScalers, src1, Scalers(0, 10, 1700000010, 1, true, 1, 2, 3)).
		Event(format.PeriodicScalers, src2, Scalers(0, 10, 1700000010, 1, true, 10, 20)).
		Event(format.PhysicsEvent, src2, []byte{5, 6}).
		Event(format.PeriodicScalers, src1, Scalers(10, 20, 1700000020, 1, true, 4, 5, 6)).
		Event(format.PhysicsEventCount, nil, EventCount(20, 1, 1700000020, 2)).
		Event(format.EndRun, src1, StateChange(run, 20, 1700000020, 1, "test run")).
		Bytes()
}
