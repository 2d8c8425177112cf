// Package pool provides a pooled, amortized-growth byte buffer used by
// the Encoder to build its output without repeated reallocation.
package pool

import "sync"

// DefaultBufferSize is the initial capacity handed out by the pool and
// by NewBuffer, per the format's buffer-growth rule (grow by doubling
// from an initial size of 256 bytes).
const DefaultBufferSize = 256

// Buffer is a growable byte slice with amortized-doubling growth.
//
// Unlike a pool tuned for large, few, long-lived payloads, $LIST items
// are typically small and numerous, so Buffer always doubles capacity
// on growth rather than switching to a percentage-based strategy for
// large sizes.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(initialCap int) *Buffer {
	return &Buffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer but retains its backing array for reuse.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow ensures the buffer can accept at least n more bytes without a
// further reallocation, doubling capacity (or more, if n demands it)
// each time the current capacity is insufficient.
func (b *Buffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	newCap := cap(b.B) * 2
	if newCap == 0 {
		newCap = DefaultBufferSize
	}
	for newCap-len(b.B) < n {
		newCap *= 2
	}

	grown := make([]byte, len(b.B), newCap)
	copy(grown, b.B)
	b.B = grown
}

// Write appends data to the buffer, growing it as needed.
func (b *Buffer) Write(data []byte) {
	b.Grow(len(data))
	b.B = append(b.B, data...)
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (b *Buffer) WriteByte(c byte) {
	b.Grow(1)
	b.B = append(b.B, c)
}

// bufferPool recycles Buffers across encode calls to reduce allocator
// pressure when many small lists are encoded back-to-back.
var bufferPool = sync.Pool{
	New: func() any {
		return NewBuffer(DefaultBufferSize)
	},
}

// Get retrieves a reset Buffer from the pool.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool for reuse.
func Put(b *Buffer) {
	if b == nil {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
