// Package errs defines the failure taxonomy shared by every ringitem package.
//
// Decoding failures are reported as sentinel errors wrapped with context, so
// callers identify the kind with errors.Is and keep the detail in the message:
//
//	if errors.Is(err, errs.ErrTruncated) {
//	    // the last event in the file was cut short
//	}
//
// Failures surfaced by an event cursor are additionally wrapped in a
// *PositionError carrying the byte offset of the offending event.
package errs

import (
	"errors"
	"fmt"
)

// Decoding failures.
var (
	// ErrOutOfBounds indicates a fixed-width field read past the end of its buffer.
	ErrOutOfBounds = errors.New("field read out of bounds")
	// ErrTruncated indicates an event whose declared length extends past the end of the buffer.
	ErrTruncated = errors.New("event truncated")
	// ErrMalformedFraming indicates an impossible event length or a body header size outside {0, 20}.
	ErrMalformedFraming = errors.New("malformed framing")
	// ErrUnknownItemType indicates a type identifier outside the dispatch table and the user item range.
	ErrUnknownItemType = errors.New("unknown ring item type")
	// ErrMalformedText indicates invalid text or a declared string/scaler count the payload cannot satisfy.
	ErrMalformedText = errors.New("malformed text")
	// ErrInvalidFieldWidth indicates a field width other than 1, 2, 4 or 8 bytes.
	ErrInvalidFieldWidth = errors.New("invalid field width")
)

// Collaborator failures.
var (
	ErrMissingSourceID        = errors.New("event has no body header source id")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrDecompressedTooLarge   = errors.New("decompressed data exceeds size limit")
)

// PositionError attaches the buffer offset of the event being decoded to a failure.
type PositionError struct {
	Offset int
	Err    error
}

// At wraps err with the event offset. It returns nil when err is nil.
func At(offset int, err error) error {
	if err == nil {
		return nil
	}

	return &PositionError{Offset: offset, Err: err}
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("event at offset %d: %v", e.Offset, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
