package item

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/section"
)

// StateChange is the shared view of BeginRun, EndRun, PauseRun, ResumeRun and
// AbnormalEndRun payloads.
//
// Layout:
//
//	| run u32 | time offset u32 | timestamp u32 | offset divisor u32 | title [80]byte |
type StateChange struct {
	data []byte
}

// Bytes returns the payload bytes.
func (s StateChange) Bytes() []byte {
	return s.data
}

// RunNumber returns the run number.
func (s StateChange) RunNumber() uint32 {
	return s.u32(section.StateChangeRunNumberOffset)
}

// TimeOffset returns the time offset into the run, in units of OffsetDivisor.
func (s StateChange) TimeOffset() uint32 {
	return s.u32(section.StateChangeTimeOffsetOffset)
}

// Timestamp returns the wall clock timestamp recorded by the producer.
func (s StateChange) Timestamp() uint32 {
	return s.u32(section.StateChangeTimestampOffset)
}

// OffsetDivisor returns the divisor that scales TimeOffset.
func (s StateChange) OffsetDivisor() uint32 {
	return s.u32(section.StateChangeOffsetDivisorOffset)
}

// TitleBytes returns the fixed 80-byte title region, padding included.
func (s StateChange) TitleBytes() []byte {
	return s.data[section.StateChangeTitleOffset:section.StateChangeSize]
}

// Title returns the NUL-terminated run title.
// It fails with errs.ErrMalformedText if the title region holds no NUL or the
// text is not valid UTF-8.
func (s StateChange) Title() (string, error) {
	title, err := firstCString(s.TitleBytes())
	if err != nil {
		return "", fmt.Errorf("run title: %w", err)
	}

	return title, nil
}

func (s StateChange) u32(off int) uint32 {
	return endian.GetWireEngine().Uint32(s.data[off:])
}
