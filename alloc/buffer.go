package alloc

// Buffer is a byte region with a logical size and an allocated capacity,
// owned exclusively by the component that created it. Appends grow the
// capacity under the append growth policy; capacity never shrinks
// implicitly. Buffer performs no locking.
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer with the given initial logical size.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: Alloc(size)}
}

// Append adds the given bytes to the end of the buffer.
func (b *Buffer) Append(p []byte) {
	n := len(b.data)
	b.data = ReallocAppend(b.data, n+len(p))
	copy(b.data[n:], p)
}

// AppendByte adds a single byte to the end of the buffer.
func (b *Buffer) AppendByte(c byte) {
	n := len(b.data)
	b.data = ReallocAppend(b.data, n+1)
	b.data[n] = c
}

// Len returns the logical size of the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the allocated capacity of the buffer.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the buffer contents. The slice shares the buffer's
// backing region and is invalidated by the next append.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset truncates the buffer to zero length, keeping the capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
