package item

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/section"
)

// PeriodicScalers is the view of a PeriodicScalers payload: one readout of a
// set of free-running counters.
//
// Layout:
//
//	| start u32 | end u32 | timestamp u32 | divisor u32 | count u32 | incremental u32 | count × u32 |
type PeriodicScalers struct {
	data []byte
}

// Bytes returns the payload bytes.
func (p PeriodicScalers) Bytes() []byte {
	return p.data
}

// IntervalStartOffset returns the start of the readout interval, in units of IntervalDivisor.
func (p PeriodicScalers) IntervalStartOffset() uint32 {
	return p.u32(section.ScalersIntervalStartOffset)
}

// IntervalEndOffset returns the end of the readout interval, in units of IntervalDivisor.
func (p PeriodicScalers) IntervalEndOffset() uint32 {
	return p.u32(section.ScalersIntervalEndOffset)
}

// Timestamp returns the wall-clock time of the readout.
func (p PeriodicScalers) Timestamp() uint32 {
	return p.u32(section.ScalersTimestampOffset)
}

// IntervalDivisor returns the divisor that scales the interval offsets.
func (p PeriodicScalers) IntervalDivisor() uint32 {
	return p.u32(section.ScalersIntervalDivisor)
}

// ScalerCount returns the declared number of scalers.
func (p PeriodicScalers) ScalerCount() uint32 {
	return p.u32(section.ScalersCountOffset)
}

// IsIncremental reports whether the counters were cleared after each readout.
func (p PeriodicScalers) IsIncremental() bool {
	return p.u32(section.ScalersIncrementalOffset) != 0
}

// Scalers returns the ScalerCount counter values in channel order.
func (p PeriodicScalers) Scalers() ([]uint32, error) {
	if err := p.checkCount(); err != nil {
		return nil, err
	}

	return p.AppendScalers(make([]uint32, 0, p.ScalerCount()))
}

// AppendScalers appends the counter values to dst and returns the extended slice.
// It lets aggregators reuse a scratch slice across events.
//
// Returns:
//   - []uint32: dst with ScalerCount values appended
//   - error: errs.ErrMalformedText if the payload holds fewer than ScalerCount values
func (p PeriodicScalers) AppendScalers(dst []uint32) ([]uint32, error) {
	if err := p.checkCount(); err != nil {
		return dst, err
	}

	engine := endian.GetWireEngine()
	n := int(p.ScalerCount())
	for i := 0; i < n; i++ {
		off := section.ScalersValuesOffset + i*section.ScalerWidth
		dst = append(dst, engine.Uint32(p.data[off:]))
	}

	return dst, nil
}

// Scaler returns the value of channel i.
func (p PeriodicScalers) Scaler(i int) (uint32, error) {
	if err := p.checkCount(); err != nil {
		return 0, err
	}
	if i < 0 || uint64(i) >= uint64(p.ScalerCount()) {
		return 0, fmt.Errorf("%w: scaler %d of %d", errs.ErrOutOfBounds, i, p.ScalerCount())
	}

	return p.u32(section.ScalersValuesOffset + i*section.ScalerWidth), nil
}

// checkCount verifies the declared count fits in the payload.
func (p PeriodicScalers) checkCount() error {
	count := uint64(p.ScalerCount())
	avail := uint64(len(p.data) - section.ScalersValuesOffset)
	if count*section.ScalerWidth > avail {
		return fmt.Errorf("%w: declared %d scalers, payload holds %d",
			errs.ErrMalformedText, count, avail/section.ScalerWidth)
	}

	return nil
}

func (p PeriodicScalers) u32(off int) uint32 {
	return endian.GetWireEngine().Uint32(p.data[off:])
}
