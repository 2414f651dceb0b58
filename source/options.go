package source

import (
	"fmt"

	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/options"
)

// DefaultMaxDecompressedSize caps the in-memory size of a decompressed file.
const DefaultMaxDecompressedSize = 4 << 30 // 4GiB

type config struct {
	mmap          bool
	compression   format.CompressionType
	detect        bool
	maxDecompress int64
}

func defaultConfig() *config {
	return &config{
		mmap:          true,
		detect:        true,
		maxDecompress: DefaultMaxDecompressedSize,
	}
}

// Option configures Open.
type Option = options.Option[*config]

// WithMmap enables or disables memory-mapping of uncompressed files.
// When disabled the file is read into memory. Enabled by default.
func WithMmap(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.mmap = enabled
	})
}

// WithCompression overrides compression detection by file extension.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		default:
			return fmt.Errorf("invalid source compression: %s", ct)
		}
		c.compression = ct
		c.detect = false

		return nil
	})
}

// WithMaxDecompressedSize limits how large a compressed file may grow in
// memory. A limit <= 0 disables the check.
func WithMaxDecompressedSize(n int64) Option {
	return options.NoError(func(c *config) {
		c.maxDecompress = n
	})
}
