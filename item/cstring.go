package item

import (
	"bytes"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/ringitem/errs"
)

// viewString returns a string sharing b's memory.
// The caller's buffer is immutable for the lifetime of every view, which is
// what makes the aliasing sound.
func viewString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}

// firstCString returns the text before the first NUL in region.
func firstCString(region []byte) (string, error) {
	end := bytes.IndexByte(region, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: no NUL terminator in %d-byte region", errs.ErrMalformedText, len(region))
	}

	seg := region[:end]
	if !utf8.Valid(seg) {
		return "", fmt.Errorf("%w: invalid UTF-8", errs.ErrMalformedText)
	}

	return viewString(seg), nil
}

// splitCStrings splits region on NUL and returns the first n segments.
// A final segment without a terminator counts, as does the empty segment
// after a trailing NUL.
func splitCStrings(region []byte, n uint32) ([]string, error) {
	// Each segment but the last consumes at least one byte.
	capHint := uint64(len(region)) + 1
	if uint64(n) < capHint {
		capHint = uint64(n)
	}
	out := make([]string, 0, capHint)

	rest := region
	exhausted := false
	for i := uint32(0); i < n; i++ {
		if exhausted {
			return nil, fmt.Errorf("%w: declared %d strings, found %d", errs.ErrMalformedText, n, i)
		}

		var seg []byte
		if end := bytes.IndexByte(rest, 0); end >= 0 {
			seg, rest = rest[:end], rest[end+1:]
		} else {
			seg, exhausted = rest, true
		}

		if !utf8.Valid(seg) {
			return nil, fmt.Errorf("%w: string %d is not valid UTF-8", errs.ErrMalformedText, i)
		}
		out = append(out, viewString(seg))
	}

	return out, nil
}
