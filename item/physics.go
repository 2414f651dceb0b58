package item

import (
	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/section"
)

// PhysicsEvent is an opaque physics payload.
type PhysicsEvent struct {
	data []byte
}

// Bytes returns the payload bytes.
func (p PhysicsEvent) Bytes() []byte {
	return p.data
}

// PhysicsEventCount reports how many physics events were produced so far.
//
// Layout:
//
//	| time offset u32 | offset divisor u32 | timestamp u32 | event count u64 |
type PhysicsEventCount struct {
	data []byte
}

// Bytes returns the payload bytes.
func (p PhysicsEventCount) Bytes() []byte {
	return p.data
}

// TimeOffset returns the time since the start of the run, in OffsetDivisor units.
func (p PhysicsEventCount) TimeOffset() uint32 {
	return endian.GetWireEngine().Uint32(p.data[section.EventCountTimeOffsetOffset:])
}

// OffsetDivisor returns the divisor that scales TimeOffset.
func (p PhysicsEventCount) OffsetDivisor() uint32 {
	return endian.GetWireEngine().Uint32(p.data[section.EventCountOffsetDivisorOffset:])
}

// Timestamp returns the wall-clock time the item was written.
func (p PhysicsEventCount) Timestamp() uint32 {
	return endian.GetWireEngine().Uint32(p.data[section.EventCountTimestampOffset:])
}

// EventCount returns the number of physics events.
func (p PhysicsEventCount) EventCount() uint64 {
	return endian.GetWireEngine().Uint64(p.data[section.EventCountCountOffset:])
}
