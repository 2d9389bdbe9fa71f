package stream

import (
	"io"
	"os"
)

// Sink forwards mirrored bytes to an already-open writer and keeps count of
// what the writer acknowledged. It never opens or closes the writer.
type Sink struct {
	writer  io.Writer
	written int64
}

func NewSink(writer io.Writer) *Sink {
	return &Sink{writer: writer}
}

func NewStdoutSink() *Sink {
	return NewSink(os.Stdout)
}

func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.writer.Write(p)
	s.written += int64(n)

	return n, err
}

// Written is the number of bytes the writer acknowledged so far.
func (s *Sink) Written() int64 {
	return s.written
}
