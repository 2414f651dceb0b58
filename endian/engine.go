// Package endian provides the byte order engine and the fixed-width field
// reader every ringitem view is built on.
//
// The ring item wire format is little-endian throughout. Views never decode a
// field by slicing directly; they go through the checked readers in this
// package so a short buffer surfaces as errs.ErrOutOfBounds instead of a panic:
//
//	size, err := endian.Uint32(buf, 0)
//	if err != nil {
//	    return err // wraps errs.ErrOutOfBounds
//	}
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library. Readers use the ByteOrder half; the test fixture
// builder uses the AppendByteOrder half to frame events.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetWireEngine returns the engine matching the ring item wire format.
func GetWireEngine() EndianEngine {
	return wire
}

var wire = GetLittleEndianEngine()
