// Package colbuf implements the growable, cache-line aligned contiguous
// buffer that the ECS core treats as an external collaborator: a plain
// dynamic array of fixed-stride rows, grown by doubling, nothing more.
//
// It intentionally knows nothing about component kinds, signatures, or
// entities — those concerns live in the archway package. This package only
// answers "give me N bytes per row, aligned, and let me grow it".
package colbuf

import "unsafe"

// Buffer is a stride-addressed byte column backed by a single allocation.
// The address returned by Ptr is stable until the next GrowTo.
type Buffer struct {
	raw      []byte
	base     uintptr
	stride   int
	capacity int
	align    int
}

// New allocates a buffer for `capacity` rows of `stride` bytes each, with
// its first row aligned to `align` bytes. capacity is rounded up to the
// next power of two (zero becomes one).
func New(stride, capacity, align int) *Buffer {
	b := &Buffer{stride: stride, align: align}
	b.allocate(roundPow2(capacity))
	return b
}

// Stride reports the fixed row width in bytes.
func (b *Buffer) Stride() int { return b.stride }

// Capacity reports the current row capacity.
func (b *Buffer) Capacity() int { return b.capacity }

// Ptr returns a pointer to the start of row `row`. Valid until the next
// GrowTo call on this buffer that reallocates it.
func (b *Buffer) Ptr(row int) unsafe.Pointer {
	return unsafe.Pointer(b.base + uintptr(row*b.stride))
}

// GrowTo reallocates the buffer to at least `newCapacity` rows (rounded up
// to a power of two), copying the first `liveRows` rows of existing data.
// A no-op if the buffer is already large enough.
func (b *Buffer) GrowTo(newCapacity, liveRows int) {
	if newCapacity <= b.capacity {
		return
	}
	newCapacity = roundPow2(newCapacity)
	old := b.raw
	oldBase := b.base
	oldStride := b.stride
	b.allocate(newCapacity)
	if liveRows > 0 {
		n := liveRows * oldStride
		dst := unsafe.Slice((*byte)(unsafe.Pointer(b.base)), n)
		src := unsafe.Slice((*byte)(unsafe.Pointer(oldBase)), n)
		copy(dst, src)
	}
	_ = old
}

// MoveRow byte-copies `stride` bytes from srcRow to dstRow within the same
// buffer. Used for swap-remove and relocation row copies.
func (b *Buffer) MoveRow(srcRow, dstRow int) {
	if srcRow == dstRow {
		return
	}
	n := b.stride
	dst := unsafe.Slice((*byte)(b.Ptr(dstRow)), n)
	src := unsafe.Slice((*byte)(b.Ptr(srcRow)), n)
	copy(dst, src)
}

// CopyRowFrom copies one row from another buffer (possibly with a different
// stride; only min(stride) bytes are copied — callers pass matching strides
// for component kinds shared across archetypes).
func (b *Buffer) CopyRowFrom(dstRow int, src *Buffer, srcRow int) {
	n := b.stride
	if src.stride < n {
		n = src.stride
	}
	dst := unsafe.Slice((*byte)(b.Ptr(dstRow)), n)
	srcBytes := unsafe.Slice((*byte)(src.Ptr(srcRow)), n)
	copy(dst, srcBytes)
}

func (b *Buffer) allocate(capacity int) {
	if b.stride == 0 {
		b.raw = nil
		b.base = 0
		b.capacity = capacity
		return
	}
	size := capacity*b.stride + b.align
	b.raw = make([]byte, size)
	start := uintptr(unsafe.Pointer(unsafe.SliceData(b.raw)))
	aligned := alignUp(start, uintptr(b.align))
	b.base = aligned
	b.capacity = capacity
}

func alignUp(p, align uintptr) uintptr {
	if align == 0 {
		return p
	}
	return (p + align - 1) &^ (align - 1)
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
