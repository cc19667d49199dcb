package console

// lineBuffer accumulates bytes of the line being edited. Capacity is fixed
// at construction; one slot is always held in reserve so the visible length
// never reaches max, matching the console's documented sizing contract.
type lineBuffer struct {
	data []byte
	max  int
}

func newLineBuffer(max int) *lineBuffer {
	return &lineBuffer{
		data: make([]byte, 0, max),
		max:  max,
	}
}

// String returns the current line content.
func (b *lineBuffer) String() string {
	return string(b.data)
}

// Len returns the number of bytes in the buffer.
func (b *lineBuffer) Len() int {
	return len(b.data)
}

// Reset discards the buffer content.
func (b *lineBuffer) Reset() {
	b.data = b.data[:0]
}

// AppendByte appends a single byte. Returns false without modifying the
// buffer when it is full.
func (b *lineBuffer) AppendByte(c byte) bool {
	if len(b.data) >= b.max-1 {
		return false
	}
	b.data = append(b.data, c)
	return true
}

// Append appends s all-or-nothing. Returns false without modifying the
// buffer when there is not enough room.
func (b *lineBuffer) Append(s string) bool {
	if len(b.data)+len(s) > b.max-1 {
		return false
	}
	b.data = append(b.data, s...)
	return true
}

// TrimLast removes the last byte. Returns false if the buffer is empty.
func (b *lineBuffer) TrimLast() bool {
	if len(b.data) == 0 {
		return false
	}
	b.data = b.data[:len(b.data)-1]
	return true
}
