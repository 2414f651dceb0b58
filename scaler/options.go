package scaler

import (
	"fmt"
	"runtime"

	"github.com/arloliu/ringitem/internal/options"
)

// DefaultBatchSize is the number of events handed to a worker at once.
const DefaultBatchSize = 256

type config struct {
	workers   int
	batchSize int
	anonymous bool
}

func defaultConfig() *config {
	return &config{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: DefaultBatchSize,
	}
}

// Option configures an Aggregator.
type Option = options.Option[*config]

// WithWorkers sets the number of goroutines used by AddParallel.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("invalid worker count: %d", n)
		}
		c.workers = n

		return nil
	})
}

// WithBatchSize sets how many events AddParallel sends to a worker at once.
func WithBatchSize(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("invalid batch size: %d", n)
		}
		c.batchSize = n

		return nil
	})
}

// WithAnonymousSource attributes scaler events without a body header to
// source id 0 instead of failing with errs.ErrMissingSourceID.
func WithAnonymousSource() Option {
	return options.NoError(func(c *config) {
		c.anonymous = true
	})
}
