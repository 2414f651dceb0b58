package scaler

import (
	"context"
	"fmt"
	"sync"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/options"
	"github.com/arloliu/ringitem/internal/pool"
)

const scratchCapacity = 64

// Aggregator accumulates scaler totals over one or more event buffers.
//
// Add and AddParallel are all-or-nothing per buffer: totals change only if
// the whole buffer decodes. An Aggregator is not safe for concurrent use;
// AddParallel manages its own workers.
type Aggregator struct {
	cfg    *config
	totals Totals
	events uint64
}

// NewAggregator creates an empty aggregator.
//
// Parameters:
//   - opts: Optional configuration (WithWorkers, WithBatchSize, WithAnonymousSource)
//
// Returns:
//   - *Aggregator: The aggregator
//   - error: An invalid option value
func NewAggregator(opts ...Option) (*Aggregator, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Aggregator{cfg: cfg, totals: make(Totals)}, nil
}

// Totals returns the accumulated totals. The map is owned by the aggregator.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

// Events returns the number of scaler events aggregated so far.
func (a *Aggregator) Events() uint64 {
	return a.events
}

// AddEvent aggregates a single event. Events of other types are ignored.
func (a *Aggregator) AddEvent(ev event.Event) error {
	scratch, cleanup := pool.GetUint32Slice(scratchCapacity)
	defer cleanup()

	r := reducer{anonymous: a.cfg.anonymous, scratch: scratch}
	ok, err := r.add(a.totals, ev)
	if err != nil {
		return errs.At(ev.Offset(), err)
	}
	if ok {
		a.events++
	}

	return nil
}

// Add aggregates every scaler event of buf in order.
//
// Returns:
//   - error: The first framing or decoding failure, wrapped in *errs.PositionError
func (a *Aggregator) Add(buf []byte) error {
	scratch, cleanup := pool.GetUint32Slice(scratchCapacity)
	defer cleanup()

	r := reducer{anonymous: a.cfg.anonymous, scratch: scratch}
	local := make(Totals)
	var n uint64

	cur := event.NewCursor(buf)
	for cur.Next() {
		ev := cur.Event()
		ok, err := r.add(local, ev)
		if err != nil {
			return errs.At(ev.Offset(), err)
		}
		if ok {
			n++
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}

	a.totals.Merge(local)
	a.events += n

	return nil
}

type partial struct {
	totals Totals
	events uint64
}

// AddParallel aggregates buf using a pool of workers.
//
// Framing is inherently sequential, so the calling goroutine walks the cursor
// and hands batches of events to the workers. Each worker reduces into its own
// Totals; the partial results are merged once every worker is done.
//
// Returns:
//   - error: The first failure of any worker or of framing, or the context's
//     cancellation cause
func (a *Aggregator) AddParallel(ctx context.Context, buf []byte) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	workers := a.cfg.workers
	batches := make(chan []event.Event, workers)
	results := make([]partial, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			scratch, cleanup := pool.GetUint32Slice(scratchCapacity)
			defer cleanup()

			r := reducer{anonymous: a.cfg.anonymous, scratch: scratch}
			res := partial{totals: make(Totals)}
			for batch := range batches {
				if ctx.Err() != nil {
					continue
				}
				for _, ev := range batch {
					ok, err := r.add(res.totals, ev)
					if err != nil {
						cancel(errs.At(ev.Offset(), err))
						break
					}
					if ok {
						res.events++
					}
				}
			}
			results[w] = res
		}()
	}

	cur := event.NewCursor(buf)
	a.produce(ctx, cur, batches)
	close(batches)
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return err
	}
	if err := cur.Err(); err != nil {
		return err
	}

	for _, res := range results {
		a.totals.Merge(res.totals)
		a.events += res.events
	}

	return nil
}

func (a *Aggregator) produce(ctx context.Context, cur *event.Cursor, batches chan<- []event.Event) {
	size := a.cfg.batchSize
	batch := make([]event.Event, 0, size)

	send := func() bool {
		select {
		case batches <- batch:
			batch = make([]event.Event, 0, size)
			return true
		case <-ctx.Done():
			return false
		}
	}

	for cur.Next() {
		batch = append(batch, cur.Event())
		if len(batch) == size && !send() {
			return
		}
	}

	if len(batch) > 0 {
		send()
	}
}

// reducer adds scaler events into a Totals, reusing one scratch slice.
type reducer struct {
	anonymous bool
	scratch   *[]uint32
}

func (r *reducer) add(t Totals, ev event.Event) (bool, error) {
	if ev.ItemType() != format.PeriodicScalers {
		return false, nil
	}

	ri, err := ev.RingItem()
	if err != nil {
		return false, err
	}
	ps, _ := ri.AsPeriodicScalers()

	// RingItem already validated the body header.
	bh, _ := ev.BodyHeader()
	src, ok := bh.SourceID()
	if !ok {
		if !r.anonymous {
			return false, fmt.Errorf("%w: periodic scalers event", errs.ErrMissingSourceID)
		}
		src = 0
	}

	vals, err := ps.AppendScalers((*r.scratch)[:0])
	*r.scratch = vals
	if err != nil {
		return false, err
	}

	for i, v := range vals {
		t[Key{SourceID: src, Index: uint32(i)}] += uint64(v) //nolint: gosec
	}

	return true, nil
}
