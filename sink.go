package asciijson

import (
	"bufio"
	"bytes"
	"io"
)

// Sink is the byte destination a writer emits into: sequential byte, string
// and slice writes, an explicit flush, and the count of bytes accepted so
// far. The writer depends only on this contract, not on any transport.
type Sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter

	// Flush forces any buffered bytes out to the underlying destination.
	Flush() error

	// Outpos reports the number of bytes written to the sink so far.
	Outpos() int64
}

// BufferSink is an in-memory Sink backed by a bytes.Buffer.
type BufferSink struct {
	buf bytes.Buffer
}

// NewBufferSink returns an empty in-memory sink.
func NewBufferSink() *BufferSink { return &BufferSink{} }

func (s *BufferSink) Write(p []byte) (int, error)       { return s.buf.Write(p) }
func (s *BufferSink) WriteByte(c byte) error            { return s.buf.WriteByte(c) }
func (s *BufferSink) WriteString(v string) (int, error) { return s.buf.WriteString(v) }

// Flush is a no-op: buffered output is already final.
func (s *BufferSink) Flush() error { return nil }

func (s *BufferSink) Outpos() int64 { return int64(s.buf.Len()) }

// Bytes returns the accumulated output. The slice is only valid until the
// next write.
func (s *BufferSink) Bytes() []byte { return s.buf.Bytes() }

// String returns the accumulated output as a string.
func (s *BufferSink) String() string { return s.buf.String() }

// Reset discards all accumulated output.
func (s *BufferSink) Reset() { s.buf.Reset() }

// StreamSink bridges any io.Writer into a Sink. Writes are buffered; Flush
// drains the buffer into the underlying writer. Outpos counts bytes accepted
// by the sink, not bytes already pushed downstream.
type StreamSink struct {
	w   *bufio.Writer
	pos int64
}

// NewStreamSink returns a sink writing to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bufio.NewWriter(w)}
}

func (s *StreamSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.pos += int64(n)
	return n, err
}

func (s *StreamSink) WriteByte(c byte) error {
	if err := s.w.WriteByte(c); err != nil {
		return err
	}
	s.pos++
	return nil
}

func (s *StreamSink) WriteString(v string) (int, error) {
	n, err := s.w.WriteString(v)
	s.pos += int64(n)
	return n, err
}

func (s *StreamSink) Flush() error { return s.w.Flush() }

func (s *StreamSink) Outpos() int64 { return s.pos }
