package source

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/arloliu/ringitem/compress"
	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/options"
)

// Source owns the buffer of one opened event file.
type Source struct {
	path        string
	data        []byte
	compression format.CompressionType
	unmap       func() error
}

// Open loads the event file at path.
//
// Uncompressed files are memory-mapped unless WithMmap(false) is given or the
// platform has no mmap support, in which case the file is read fully.
// Compressed files are decompressed into memory.
//
// Parameters:
//   - path: File to open; the extension selects the codec unless WithCompression is given
//   - opts: Optional configuration (WithMmap, WithCompression, WithMaxDecompressedSize)
//
// Returns:
//   - *Source: The opened file; call Close when done with every view derived from it
//   - error: Option, I/O, mapping or decompression failure
func Open(path string, opts ...Option) (*Source, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ct := cfg.compression
	if cfg.detect {
		ct = compress.ForPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	s := &Source{path: path, compression: ct}

	if ct != format.CompressionNone {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return nil, err
		}

		data, err := compress.ReadAll(codec, f, cfg.maxDecompress)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decompress %s", path)
		}
		s.data = data

		return s, nil
	}

	if cfg.mmap {
		data, unmap, err := mapFile(f)
		if err == nil {
			s.data, s.unmap = data, unmap
			return s, nil
		}
		if !errors.Is(err, errMmapUnsupported) {
			return nil, errors.Wrapf(err, "failed to mmap %s", path)
		}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	s.data = data

	return s, nil
}

// Bytes returns the event buffer. It is invalid after Close.
func (s *Source) Bytes() []byte {
	return s.data
}

// Len returns the buffer length in bytes.
func (s *Source) Len() int {
	return len(s.data)
}

// Path returns the path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Compression returns the codec the file was read with.
func (s *Source) Compression() format.CompressionType {
	return s.compression
}

// Mapped reports whether the buffer is a memory mapping of the file.
func (s *Source) Mapped() bool {
	return s.unmap != nil
}

// Cursor returns a new cursor over the buffer.
func (s *Source) Cursor() *event.Cursor {
	return event.NewCursor(s.data)
}

// Close releases the buffer. Every view derived from it becomes invalid;
// touching a view of an unmapped file faults. Close is idempotent.
func (s *Source) Close() error {
	s.data = nil
	if s.unmap == nil {
		return nil
	}

	unmap := s.unmap
	s.unmap = nil
	if err := unmap(); err != nil {
		return errors.Wrapf(err, "failed to unmap %s", s.path)
	}

	return nil
}
