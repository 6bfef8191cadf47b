package cdata

import (
	"fmt"
	"io"
)

// Stream is the write target of an open CDATA section. It is only valid
// between BeginStream and the matching EndStream; afterwards every write
// fails with ErrStreamClosed.
type Stream struct {
	format  Format
	dst     io.Writer
	written int64
	closed  bool
	err     error
}

var (
	_ io.Writer       = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
)

// Write pushes p into the section, encoding it per the stream's Format.
func (s *Stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.dst.Write(p)
	s.written += int64(n)
	if err != nil {
		s.err = fmt.Errorf("cdata: write sink: %w", err)
		return n, s.err
	}
	return n, nil
}

// WriteString is Write for string input.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Format reports the encoding selected when the stream was opened.
func (s *Stream) Format() Format { return s.format }

// Good reports whether the stream still accepts writes.
func (s *Stream) Good() bool { return !s.closed && s.err == nil }

// Written returns the number of payload bytes accepted so far, before encoding.
func (s *Stream) Written() int64 { return s.written }

// close finalizes the encoder state. The handle is unusable afterwards.
func (s *Stream) close() error {
	s.closed = true
	if enc, ok := s.dst.(*base64Encoder); ok {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("cdata: flush base64: %w", err)
		}
	}
	return nil
}
