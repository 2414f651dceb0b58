package pool

import "sync"

// Slice pools for reusing scratch slices while decoding scaler counters.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves an empty uint32 slice with at least the given capacity.
//
// The slice is returned with length 0, ready for append-style APIs such as
// item.PeriodicScalers.AppendScalers. The caller must call the returned
// cleanup function to return the slice to the pool; the slice must not be
// used afterwards.
//
// Parameters:
//   - capacity: The minimum capacity of the slice
//
// Returns:
//   - *[]uint32: Pointer to the pooled slice; store the grown slice back through it
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	buf, cleanup := pool.GetUint32Slice(64)
//	defer cleanup()
//	*buf, err = ps.AppendScalers((*buf)[:0])
func GetUint32Slice(capacity int) (*[]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	if cap(*ptr) < capacity {
		*ptr = make([]uint32, 0, capacity)
	} else {
		*ptr = (*ptr)[:0]
	}

	return ptr, func() { uint32SlicePool.Put(ptr) }
}
