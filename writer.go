package cdata

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Writer serializes payloads into CDATA sections on a sink.
//
// InsertText writes complete sections immediately. BeginStream, Stream and
// EndStream form a streaming protocol for payloads pushed incrementally. At
// most one stream is open at a time. Both APIs append to the same sink in
// call order, with one exception: a base64 stream holds up to two input
// bytes until a full group or EndStream, so those reach the sink after
// anything written in between. Calling InsertText while a stream is open
// also nests a section inside the open one. Avoiding both is the caller's
// responsibility.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink    io.Writer
	cfg     writerConfig
	log     *slog.Logger
	stream  *Stream
	scratch []byte
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newWriter(w, cfg), nil
}

func newWriter(w io.Writer, cfg writerConfig) *Writer {
	return &Writer{sink: w, cfg: cfg, log: cfg.logger}
}

// InsertText writes p as one or more CDATA sections. Any "]]>" inside p is
// split across two sections so the content survives unchanged.
//
// InsertText does not check for an open stream. Called during a base64
// stream, its sections land inside the open one and ahead of the bytes the
// encoder is still holding.
func (w *Writer) InsertText(p []byte) error {
	w.scratch = Escape(w.scratch[:0], p)
	return w.write(w.scratch)
}

// InsertString is InsertText for string input.
func (w *Writer) InsertString(s string) error {
	return w.InsertText([]byte(s))
}

// BeginStream opens a CDATA section and returns the handle that writes into
// it. The section stays open until EndStream. BeginStream fails with
// ErrStreamOpen, writing nothing, if a stream is already open.
func (w *Writer) BeginStream(format Format) (*Stream, error) {
	if w.stream != nil {
		w.log.Debug("stream already open", slog.String("format", w.stream.format.String()))
		return nil, ErrStreamOpen
	}
	if !format.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, uint8(format))
	}
	if err := w.write(openMarker); err != nil {
		return nil, err
	}

	s := &Stream{format: format, dst: w.sink}
	if format == FormatBase64 {
		s.dst = newBase64Encoder(w.sink, w.cfg.lineLength, w.cfg.lineBreak)
	}
	w.stream = s
	w.log.Debug("stream begin", slog.String("format", format.String()))
	return s, nil
}

// Stream returns the handle of the open stream, the same value BeginStream
// returned. It fails with ErrNoStream when no stream is open.
func (w *Writer) Stream() (*Stream, error) {
	if w.stream == nil {
		return nil, ErrNoStream
	}
	return w.stream, nil
}

// Sink returns the destination the Writer appends to. Hosts write their own
// markup there between sections; such writes bypass escaping.
func (w *Writer) Sink() io.Writer { return w.sink }

// StreamOpen reports whether a stream is currently open.
func (w *Writer) StreamOpen() bool { return w.stream != nil }

// EndStream flushes the open stream's encoder, closes the section and
// invalidates the handle. Without an open stream it does nothing. A non-nil
// error only reports a sink failure; the stream is closed regardless.
func (w *Writer) EndStream() error {
	s := w.stream
	if s == nil {
		return nil
	}
	w.stream = nil

	err := s.close()
	if werr := w.write(closeMarker); err == nil {
		err = werr
	}
	w.log.Debug("stream end",
		slog.String("format", s.format.String()),
		slog.Int64("bytes", s.written),
	)
	return err
}

func (w *Writer) write(p []byte) error {
	if _, err := w.sink.Write(p); err != nil {
		return fmt.Errorf("cdata: write sink: %w", err)
	}
	return nil
}

// StringWriter is a Writer that collects its output in memory.
type StringWriter struct {
	*Writer
	buf strings.Builder
}

// NewStringWriter returns a Writer over an in-memory buffer.
func NewStringWriter(opts ...Option) (*StringWriter, error) {
	sw := &StringWriter{}
	w, err := NewWriter(&sw.buf, opts...)
	if err != nil {
		return nil, err
	}
	sw.Writer = w
	return sw, nil
}

// String returns everything written so far.
func (sw *StringWriter) String() string { return sw.buf.String() }
