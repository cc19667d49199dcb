package console

import (
	"errors"
	"io"
	"sync"
)

// Stream is the byte-stream device the console talks to, typically a serial
// port or a network connection. Reads must not block: Available reports how
// many bytes can currently be read, and ReadByte/PeekByte are only called
// when Available is positive.
type Stream interface {
	io.Writer

	// Available returns the number of bytes that can be read without blocking.
	Available() int

	// ReadByte consumes and returns the next buffered byte.
	ReadByte() (byte, error)

	// PeekByte returns the next buffered byte without consuming it.
	PeekByte() (byte, error)
}

// errNoData is returned by ReadByte/PeekByte when no byte is buffered and
// the upstream reader has not ended.
var errNoData = errors.New("console: no buffered input")

// PipeStream adapts an ordinary blocking reader/writer pair into a Stream.
// A background goroutine pumps bytes from the reader into an internal
// buffer so that Available, ReadByte and PeekByte never block.
type PipeStream struct {
	w io.Writer

	mu  sync.Mutex
	buf []byte
	err error
}

// NewPipeStream starts pumping r and returns a Stream whose writes go to w.
// The pump goroutine exits when r returns an error (including io.EOF).
func NewPipeStream(r io.Reader, w io.Writer) *PipeStream {
	s := &PipeStream{w: w}
	go s.pump(r)
	return s
}

func (s *PipeStream) pump(r io.Reader) {
	chunk := make([]byte, 256)
	for {
		n, err := r.Read(chunk)
		s.mu.Lock()
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
		}
		if err != nil {
			s.err = err
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

// Available returns the number of buffered bytes.
func (s *PipeStream) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// ReadByte consumes the next buffered byte.
func (s *PipeStream) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, errNoData
	}
	b := s.buf[0]
	s.buf = s.buf[1:]
	return b, nil
}

// PeekByte returns the next buffered byte without consuming it.
func (s *PipeStream) PeekByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, errNoData
	}
	return s.buf[0], nil
}

// Write forwards to the underlying writer.
func (s *PipeStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
