package pool

import (
	"io"
	"strconv"
	"sync"
)

const (
	RecordBufferDefaultSize  = 1024       // 1KiB, one rendered event
	RecordBufferMaxThreshold = 1024 * 64  // 64KiB
	RawBufferDefaultSize     = 1024 * 4   // 4KiB
	RawBufferMaxThreshold    = 1024 * 512 // 512KiB
)

// ByteBuffer is an append-only scratch buffer for rendering records.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends s to the buffer.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteByte appends c to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// AppendUint appends the decimal form of v.
func (bb *ByteBuffer) AppendUint(v uint64) {
	bb.B = strconv.AppendUint(bb.B, v, 10)
}

// AppendQuoted appends s as a Go-quoted string.
func (bb *ByteBuffer) AppendQuoted(s string) {
	bb.B = strconv.AppendQuote(bb.B, s)
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers that grew past maxThreshold are dropped on Put instead of being
// retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	recordDefaultPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	rawDefaultPool    = NewByteBufferPool(RawBufferDefaultSize, RawBufferMaxThreshold)
)

// GetRecordBuffer retrieves a ByteBuffer for rendering one event record.
func GetRecordBuffer() *ByteBuffer {
	return recordDefaultPool.Get()
}

// PutRecordBuffer returns a ByteBuffer to the record pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordDefaultPool.Put(bb)
}

// GetRawBuffer retrieves a ByteBuffer for hex dumps of event bytes.
func GetRawBuffer() *ByteBuffer {
	return rawDefaultPool.Get()
}

// PutRawBuffer returns a ByteBuffer to the raw pool.
func PutRawBuffer(bb *ByteBuffer) {
	rawDefaultPool.Put(bb)
}
