package console

import (
	"bytes"
	"io"
	"sync"

	"golang.org/x/text/encoding"
)

// Stream is the narrow write capability shared by the real console streams
// and CapturingStream.
type Stream interface {
	io.Writer
	io.StringWriter
}

// CapturingStream accumulates everything written to it in memory instead of
// forwarding it to a terminal. It is safe for concurrent writers; the order of
// the captured bytes is the order in which writes acquired the stream.
type CapturingStream struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCapturingStream returns an empty CapturingStream.
func NewCapturingStream() *CapturingStream {
	return &CapturingStream{}
}

// Write appends p. It only fails if memory is exhausted, in which case
// bytes.Buffer panics.
func (s *CapturingStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// WriteString appends str.
func (s *CapturingStream) WriteString(str string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.WriteString(str)
}

// Bytes returns a copy of everything written so far.
func (s *CapturingStream) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.buf.Bytes())
}

// Contents decodes a snapshot of the captured bytes with enc.
func (s *CapturingStream) Contents(enc encoding.Encoding) (string, error) {
	decoded, err := enc.NewDecoder().Bytes(s.Bytes())
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// String returns the captured bytes unchanged. Use Contents to decode output
// written in another charset.
func (s *CapturingStream) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Len reports the number of captured bytes.
func (s *CapturingStream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

var _ Stream = (*CapturingStream)(nil)
