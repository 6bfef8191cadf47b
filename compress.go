package cdata

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

// Function variables for testing injection.
var (
	newZstdWriter = func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	newGzipReader = func(r io.Reader) (io.ReadCloser, error) { return pgzip.NewReader(r) }
)

func (c Compression) valid() bool {
	switch c {
	case CompNone, CompZSTD, CompLZ4, CompBR, CompGZIP, CompSnappy:
		return true
	}
	return false
}

// String returns the short name of c, or "unknown".
func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "br"
	case CompGZIP:
		return "gzip"
	case CompSnappy:
		return "snappy"
	default:
		return "unknown"
	}
}

// ParseCompression maps a short name back to a Compression.
func ParseCompression(s string) (Compression, error) {
	for _, c := range []Compression{CompNone, CompZSTD, CompLZ4, CompBR, CompGZIP, CompSnappy} {
		if c.String() == s {
			return c, nil
		}
	}
	if s == "" {
		return CompNone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCompression, s)
}

// compressWriter wraps w so that everything written is compressed with comp.
// Closing the result flushes the compressor but leaves w open.
func compressWriter(comp Compression, w io.Writer) (io.WriteCloser, error) {
	switch comp {
	case CompNone:
		return nopWriteCloser{w}, nil
	case CompZSTD:
		return newZstdWriter(w)
	case CompLZ4:
		return lz4.NewWriter(w), nil
	case CompBR:
		return brotli.NewWriter(w), nil
	case CompGZIP:
		return pgzip.NewWriter(w), nil
	case CompSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, comp)
	}
}

// decompressReader wraps r so that reads yield the decompressed bytes.
// Closing the result releases decoder state but leaves r open.
func decompressReader(comp Compression, r io.Reader) (io.ReadCloser, error) {
	switch comp {
	case CompNone:
		return io.NopCloser(r), nil
	case CompZSTD:
		dec, err := newZstdReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompBR:
		return io.NopCloser(brotli.NewReader(r)), nil
	case CompGZIP:
		return newGzipReader(r)
	case CompSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, comp)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
