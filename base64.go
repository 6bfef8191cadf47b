package cdata

import (
	"encoding/base64"
	"io"
)

// encodeChunk bounds the input encoded per sink write. Multiple of 3.
const encodeChunk = 3 * 1024

// base64Encoder is a streaming MIME base64 encoder. Up to two input bytes are
// carried between writes; output lines are broken every lineLen characters.
// lineLen is a multiple of 4, so a break never lands inside a group.
type base64Encoder struct {
	w         io.Writer
	enc       *base64.Encoding
	buf       [3]byte // buffered data waiting to be encoded
	nbuf      int     // number of bytes in buf
	col       int     // characters emitted since the last line break
	lineLen   int
	lineBreak []byte
	out       []byte
	err       error
}

func newBase64Encoder(w io.Writer, lineLen int, lineBreak string) *base64Encoder {
	return &base64Encoder{
		w:         w,
		enc:       base64.StdEncoding,
		lineLen:   lineLen,
		lineBreak: []byte(lineBreak),
	}
}

// Write encodes every complete 3-byte group available and forwards the
// characters to the underlying writer.
func (e *base64Encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// Leading fringe.
	if e.nbuf > 0 {
		i := copy(e.buf[e.nbuf:], p)
		e.nbuf += i
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return n, nil
		}
		e.out = e.appendGroups(e.out[:0], e.buf[:])
		e.nbuf = 0
		if err := e.flush(); err != nil {
			return n, err
		}
	}

	// Interior groups.
	for len(p) >= 3 {
		k := min(len(p), encodeChunk)
		k -= k % 3
		e.out = e.appendGroups(e.out[:0], p[:k])
		if err := e.flush(); err != nil {
			return n, err
		}
		n += k
		p = p[k:]
	}

	// Trailing fringe.
	e.nbuf = copy(e.buf[:], p)
	n += e.nbuf
	return n, nil
}

// Close encodes any buffered bytes as a final padded group and terminates
// the last line. Nothing is written when no character was ever emitted.
func (e *base64Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	e.out = e.out[:0]
	if e.nbuf > 0 {
		e.out = e.enc.AppendEncode(e.out, e.buf[:e.nbuf])
		e.col += 4
		e.nbuf = 0
	}
	if e.col > 0 {
		e.out = append(e.out, e.lineBreak...)
		e.col = 0
	}
	return e.flush()
}

// appendGroups encodes src, whose length is a multiple of 3, onto dst and
// inserts line breaks at lineLen boundaries.
func (e *base64Encoder) appendGroups(dst, src []byte) []byte {
	for len(src) > 0 {
		k := min(len(src), (e.lineLen-e.col)/4*3)
		dst = e.enc.AppendEncode(dst, src[:k])
		e.col += k / 3 * 4
		src = src[k:]
		if e.col == e.lineLen {
			dst = append(dst, e.lineBreak...)
			e.col = 0
		}
	}
	return dst
}

func (e *base64Encoder) flush() error {
	if len(e.out) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.out); err != nil {
		e.err = err
		return err
	}
	return nil
}
