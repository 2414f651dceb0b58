package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/format"
)

// Compressor compresses a whole event file held in memory.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result in the
	// codec's file format. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a whole event file held in memory.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	buf, err := codec.Decompress(archived)
//	if err != nil {
//	    return fmt.Errorf("decompress run file: %w", err)
//	}
//
// Thread Safety: all built-in decompressors are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data produced by the matching Compressor or by
	// the codec's standard command line tool.
	Decompress(data []byte) ([]byte, error)
}

// Streamer wraps readers and writers with the codec's file format.
//
// Closing a returned writer flushes the final frame but does not close the
// underlying writer. Closing a returned reader releases codec resources only.
type Streamer interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Codec combines in-memory and streaming compression for one file format.
type Codec interface {
	Compressor
	Decompressor
	Streamer
	Type() format.CompressionType
}

// CompressionStats describes the result of compressing one file.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var extensions = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".sz":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
}

// ForPath infers the compression type of a file from its extension.
// Files without a known extension are treated as uncompressed.
func ForPath(path string) format.CompressionType {
	if t, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return format.CompressionNone
}

// Extension returns the canonical file extension for a compression type,
// including the leading dot. CompressionNone has no extension.
func Extension(t format.CompressionType) string {
	switch t {
	case format.CompressionZstd:
		return ".zst"
	case format.CompressionS2:
		return ".s2"
	case format.CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ReadAll decompresses r with codec, failing once the output grows past limit bytes.
// A limit <= 0 disables the check.
//
// Returns:
//   - []byte: The decompressed bytes
//   - error: errs.ErrDecompressedTooLarge when the limit is exceeded, or the codec's error
func ReadAll(codec Codec, r io.Reader, limit int64) ([]byte, error) {
	zr, err := codec.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s reader: %w", codec.Type(), err)
	}
	defer zr.Close()

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, limit+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", codec.Type(), err)
	}

	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressedTooLarge, limit)
	}

	return data, nil
}

// Copy compresses everything read from src into dst using codec.
//
// Returns:
//   - CompressionStats: Input and output sizes
//   - error: Read, write or codec failure
func Copy(codec Codec, dst io.Writer, src io.Reader) (CompressionStats, error) {
	stats := CompressionStats{Algorithm: codec.Type()}

	counter := &countingWriter{w: dst}
	zw, err := codec.NewWriter(counter)
	if err != nil {
		return stats, fmt.Errorf("%s writer: %w", codec.Type(), err)
	}

	n, err := io.Copy(zw, src)
	stats.OriginalSize = n
	if err != nil {
		_ = zw.Close()
		return stats, fmt.Errorf("%s compression failed: %w", codec.Type(), err)
	}

	if err := zw.Close(); err != nil {
		return stats, fmt.Errorf("%s compression failed: %w", codec.Type(), err)
	}
	stats.CompressedSize = counter.n

	return stats, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
