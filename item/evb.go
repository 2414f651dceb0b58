package item

import (
	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/section"
)

// EvbFragment is an opaque event builder fragment.
type EvbFragment struct {
	data []byte
}

// Bytes returns the fragment bytes.
func (f EvbFragment) Bytes() []byte {
	return f.data
}

// EvbUnknownPayload is an event builder fragment whose payload type is unknown.
type EvbUnknownPayload struct {
	data []byte
}

// Bytes returns the fragment bytes.
func (f EvbUnknownPayload) Bytes() []byte {
	return f.data
}

// EvbGlomInfo describes how the event builder glued fragments together.
//
// Layout:
//
//	| coincident ticks u64 | is building u16 | timestamp policy u16 |
type EvbGlomInfo struct {
	data []byte
}

// Bytes returns the payload bytes.
func (g EvbGlomInfo) Bytes() []byte {
	return g.data
}

// CoincidentTicks returns the coincidence window, in timestamp ticks.
func (g EvbGlomInfo) CoincidentTicks() uint64 {
	return endian.GetWireEngine().Uint64(g.data[section.GlomCoincidentTicksOffset:])
}

// IsBuilding reports whether fragments were being glued into events.
func (g EvbGlomInfo) IsBuilding() bool {
	return endian.GetWireEngine().Uint16(g.data[section.GlomIsBuildingOffset:]) != 0
}

// TimestampPolicy returns the rule used to assign the built event's timestamp.
func (g EvbGlomInfo) TimestampPolicy() uint16 {
	return endian.GetWireEngine().Uint16(g.data[section.GlomTimestampPolicyOffset:])
}
