package cdata

import (
	"archive/zip"
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Function variables for testing injection.
var (
	zipCreate = func(zw *zip.Writer, name string) (io.Writer, error) { return zw.Create(name) }
	zipClose  = func(zw *zip.Writer) error { return zw.Close() }
)

// FileWriter is a Writer whose sink is a file, optionally compressed.
type FileWriter struct {
	*Writer
	f      *os.File
	buf    *bufio.Writer
	comp   io.WriteCloser
	gate   *sinkGate
	closed bool
}

// CreateFile creates (or truncates) the file at path and returns a Writer
// over it. The compression is derived from the path's extension unless
// WithCompression is given.
func CreateFile(path string, opts ...Option) (*FileWriter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if !cfg.compSet {
		cfg.compression = FromFileExtension(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	comp, err := compressWriter(cfg.compression, buf)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	cfg.logger.Debug("file sink open",
		slog.String("path", path),
		slog.String("compression", cfg.compression.String()),
	)
	gate := &sinkGate{w: comp}
	return &FileWriter{Writer: newWriter(gate, cfg), f: f, buf: buf, comp: comp, gate: gate}, nil
}

// Close ends any open stream and closes the file. The first error wins.
// Later calls do nothing; later writes fail with os.ErrClosed.
func (fw *FileWriter) Close() error {
	if fw.closed {
		return nil
	}
	fw.closed = true
	err := fw.EndStream()
	fw.gate.closed = true
	if cerr := fw.comp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("cdata: close compressor: %w", cerr)
	}
	if ferr := fw.buf.Flush(); err == nil && ferr != nil {
		err = ferr
	}
	if ferr := fw.f.Close(); err == nil && ferr != nil {
		err = ferr
	}
	return err
}

// OpenFile opens a file written by CreateFile and returns a reader over its
// decompressed content, choosing the codec from the extension.
func OpenFile(path string) (io.ReadCloser, error) {
	return OpenFileCompressed(path, FromFileExtension(path))
}

// OpenFileCompressed is OpenFile with an explicit compression.
func OpenFileCompressed(path string, comp Compression) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := decompressReader(comp, bufio.NewReader(f))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: r, f: f}, nil
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r *fileReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.f.Close())
}

// ZipWriter is a Writer whose output goes into the entries of a zip archive.
// Call NextEntry before writing and between documents.
type ZipWriter struct {
	*Writer
	zw     *zip.Writer
	entry  *sinkGate
	closed bool
}

// NewZipWriter returns a ZipWriter producing an archive on w.
func NewZipWriter(w io.Writer, opts ...Option) (*ZipWriter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	entry := &sinkGate{}
	return &ZipWriter{Writer: newWriter(entry, cfg), zw: zip.NewWriter(w), entry: entry}, nil
}

// NextEntry starts a new archive entry; subsequent output goes there. A
// section cannot span entries, so NextEntry fails with ErrStreamOpen while a
// stream is open. Names must be clean relative paths ("a/b.xml").
func (z *ZipWriter) NextEntry(name string) error {
	if z.closed {
		return os.ErrClosed
	}
	if z.StreamOpen() {
		return ErrStreamOpen
	}
	if err := validateEntryName(name); err != nil {
		return err
	}
	w, err := zipCreate(z.zw, name)
	if err != nil {
		return err
	}
	z.entry.w = w
	z.log.Debug("archive entry", slog.String("name", name))
	return nil
}

// Close ends any open stream and finalizes the archive. The underlying
// writer is left open. Later calls do nothing.
func (z *ZipWriter) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
	err := z.EndStream()
	z.entry.w = nil
	z.entry.closed = true
	if cerr := zipClose(z.zw); err == nil && cerr != nil {
		err = cerr
	}
	return err
}

// sinkGate forwards to w until its owner closes it. A nil w means no
// archive entry has been started yet.
type sinkGate struct {
	w      io.Writer
	closed bool
}

func (g *sinkGate) Write(p []byte) (int, error) {
	if g.closed {
		return 0, os.ErrClosed
	}
	if g.w == nil {
		return 0, ErrNoEntry
	}
	return g.w.Write(p)
}
