// Package source turns event files into the contiguous buffers the decoder
// iterates.
//
// Plain files are memory-mapped read-only; compressed files (.zst, .s2, .lz4)
// are inflated into memory. Either way Bytes returns a buffer that every view
// produced by the cursor borrows from, so the Source must outlive them:
//
//	src, err := source.Open("run-0042.evt")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	cur := src.Cursor()
//	for cur.Next() {
//	    ...
//	}
package source
