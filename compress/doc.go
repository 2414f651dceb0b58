// Package compress provides the codecs used for archived event files.
//
// Data-acquisition runs are often stored compressed. The decoder itself only
// sees a contiguous buffer, so a compressed file is inflated into memory
// first (see package source) and the result is handed to the cursor.
//
// # Supported Algorithms
//
//   - None: No compression; files are memory-mapped directly
//   - Zstd (.zst): Zstandard frames, compatible with the zstd tool
//   - S2 (.s2): S2/Snappy framed stream, compatible with s2c/s2d
//   - LZ4 (.lz4): LZ4 frame format, compatible with the lz4 tool
//
// Every codec works both on whole buffers (Compress/Decompress) and on
// streams (NewReader/NewWriter). Both forms produce the same file format.
//
// # Zstd Implementations
//
// By default Zstd uses the pure Go github.com/klauspost/compress/zstd with
// pooled encoders and decoders. Building with the gozstd tag and cgo
// enabled switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Readers and writers
// returned by NewReader/NewWriter are not.
package compress
