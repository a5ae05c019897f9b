package protocol

// Fifo is a circular byte buffer used for console buffering and the
// loopback wire. One slot is reserved to distinguish full from empty.
type Fifo struct {
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifo creates a Fifo with the specified capacity.
func NewFifo(capacity int) *Fifo {
	return &Fifo{
		buf:  make([]byte, capacity+1),
		size: capacity + 1,
	}
}

// Write appends data to the buffer, returning the number of bytes stored.
func (f *Fifo) Write(data []byte) int {
	written := 0
	for _, b := range data {
		if !f.WriteByte(b) {
			break
		}
		written++
	}
	return written
}

// WriteByte appends a single byte; it reports false if the buffer is full.
func (f *Fifo) WriteByte(b byte) bool {
	next := (f.write + 1) % f.size
	if next == f.read {
		return false
	}
	f.buf[f.write] = b
	f.write = next
	return true
}

// Read consumes up to len(data) bytes from the front of the buffer.
func (f *Fifo) Read(data []byte) int {
	n := f.Peek(data)
	f.Pop(n)
	return n
}

// ReadByte consumes a single byte; ok is false if the buffer is empty.
func (f *Fifo) ReadByte() (byte, bool) {
	if f.read == f.write {
		return 0, false
	}
	b := f.buf[f.read]
	f.read = (f.read + 1) % f.size
	return b, true
}

// Peek copies up to len(data) bytes from the front without consuming them.
func (f *Fifo) Peek(data []byte) int {
	n := 0
	pos := f.read
	for n < len(data) && pos != f.write {
		data[n] = f.buf[pos]
		pos = (pos + 1) % f.size
		n++
	}
	return n
}

// Pop discards n bytes from the front.
func (f *Fifo) Pop(n int) {
	for i := 0; i < n && f.read != f.write; i++ {
		f.read = (f.read + 1) % f.size
	}
}

// Available returns the number of bytes buffered.
func (f *Fifo) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Free returns the number of bytes that can still be written.
func (f *Fifo) Free() int {
	return f.size - f.Available() - 1
}

// IsEmpty returns true if the buffer holds no data.
func (f *Fifo) IsEmpty() bool {
	return f.read == f.write
}

// Reset clears the buffer.
func (f *Fifo) Reset() {
	f.read = 0
	f.write = 0
}
