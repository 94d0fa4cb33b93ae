// Package alloc provides fail-fast buffer allocation with an
// append-optimized growth policy. An impossible allocation request
// panics instead of returning a failure value: callers never null-check
// the result, and allocation failure is not a recoverable condition at
// this layer.
package alloc

import "fmt"

// growthFloor is the smallest capacity the append growth policy yields.
const growthFloor = 8

// AppendCapacity returns the capacity the append growth policy selects
// for a requested size: a floor of 8 bytes, scaled by 1.5 with integer
// arithmetic until it covers size. Scaling by a constant factor keeps
// repeated small appends at amortized O(1) cost while bounding wasted
// space to a constant fraction.
func AppendCapacity(size int) int {
	if size < 0 {
		panicSize(size)
	}
	capacity := growthFloor
	for capacity < size {
		capacity += capacity >> 1
	}
	return capacity
}

// Alloc returns a new buffer of the given size.
func Alloc(size int) []byte {
	if size < 0 {
		panicSize(size)
	}
	return make([]byte, size)
}

// AllocZero returns a new zeroed buffer holding n elements of the given
// element size, panicking when the total overflows.
func AllocZero(n, size int) []byte {
	if n < 0 || size < 0 || (size != 0 && n > maxInt/size) {
		panicSize(n)
	}
	return make([]byte, n*size)
}

// Realloc resizes a buffer, preserving the prefix that fits. Shrinking
// reuses the existing region; growing copies into a fresh one.
func Realloc(buf []byte, size int) []byte {
	if size < 0 {
		panicSize(size)
	}
	if size <= cap(buf) {
		return buf[:size]
	}
	next := make([]byte, size)
	copy(next, buf)
	return next
}

// ReallocAppend resizes a buffer for an append-heavy workload: when the
// buffer must grow, the new capacity comes from AppendCapacity rather
// than the exact requested size, so a run of appends reallocates only
// O(log n) times. Capacity never shrinks through this path.
func ReallocAppend(buf []byte, size int) []byte {
	if size < 0 {
		panicSize(size)
	}
	if size <= cap(buf) {
		return buf[:size]
	}
	next := make([]byte, size, AppendCapacity(size))
	copy(next, buf)
	return next
}

// Free releases a buffer reference, mirroring the allocation quartet.
// The region itself is reclaimed by the garbage collector once no
// references remain.
func Free(buf []byte) []byte {
	return nil
}

const maxInt = int(^uint(0) >> 1)

func panicSize(size int) {
	panic(fmt.Sprintf("alloc: out of memory allocating %d bytes", size))
}
