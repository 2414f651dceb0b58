package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	mmap     bool
	maxBytes int64
	workers  int
}

var errInvalid = errors.New("invalid")

func withMmap(enabled bool) Option[*readerConfig] {
	return NoError(func(c *readerConfig) { c.mmap = enabled })
}

func withWorkers(n int) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if n <= 0 {
			return errInvalid
		}
		c.workers = n

		return nil
	})
}

func withMaxBytes(n int64) Option[*readerConfig] {
	return NoError(func(c *readerConfig) { c.maxBytes = n })
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withMmap(true), withWorkers(4), withWorkers(8), withMaxBytes(1<<20))
		require.NoError(t, err)
		require.True(t, cfg.mmap)
		require.Equal(t, 8, cfg.workers, "later options win")
		require.Equal(t, int64(1<<20), cfg.maxBytes)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withWorkers(2), withWorkers(0), withMmap(true))
		require.ErrorIs(t, err, errInvalid)
		require.Equal(t, 2, cfg.workers)
		require.False(t, cfg.mmap, "options after the failure are not applied")
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &readerConfig{workers: 1}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 1, cfg.workers)
	})

	t.Run("nil option is skipped", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, Apply(cfg, nil, withMmap(true)))
		require.True(t, cfg.mmap)
	})
}

func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	var num int
	opt := NoError(func(n *int) { *n = 42 })

	require.NoError(t, opt.apply(&num))
	require.Equal(t, 42, num)
}
