// Command cdatawrap wraps files into XML CDATA sections.
//
// Usage:
//
//	cdatawrap [-config file.yaml] [-format raw|base64] [-out path] [file ...]
//
// With no files, standard input is wrapped. Output goes to standard output
// unless -out is given; an output path ending in .zst, .lz4, .br, .gz or .sz
// is compressed accordingly.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logicossoftware/go-cdata"
	"github.com/logicossoftware/go-cdata/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cdatawrap: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cdatawrap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath string
		flags      Config
	)
	fs.StringVar(&configPath, "config", "", "optional YAML config file")
	fs.StringVar(&flags.Format, "format", "", "section encoding: raw or base64")
	fs.IntVar(&flags.LineLength, "line-length", 0, "base64 characters per line (multiple of 4)")
	fs.StringVar(&flags.Compression, "compression", "", "output compression: none, zstd, lz4, br, gzip, snappy")
	fs.StringVar(&flags.Output, "out", "", "output file (default stdout)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg Config
	if configPath != "" {
		c, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = flags.Format
		case "line-length":
			cfg.LineLength = flags.LineLength
		case "compression":
			cfg.Compression = flags.Compression
		case "out":
			cfg.Output = flags.Output
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.WithComponent(logger.New(stderr, level), "cdatawrap")

	format, err := cdata.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(log)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cfg.Output, stdout, opts)
	if err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, in := range inputs {
		n, err := wrapPath(w, format, in, stdin)
		if err != nil {
			_ = closeOut()
			return fmt.Errorf("%s: %w", in, err)
		}
		log.Info("wrapped input",
			slog.String("input", in),
			slog.String("format", format.String()),
			slog.Int64("bytes", n),
		)
	}
	return closeOut()
}

func openOutput(path string, stdout io.Writer, opts []cdata.Option) (*cdata.Writer, func() error, error) {
	if path == "" {
		w, err := cdata.NewWriter(stdout, opts...)
		if err != nil {
			return nil, nil, err
		}
		return w, w.EndStream, nil
	}
	fw, err := cdata.CreateFile(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return fw.Writer, fw.Close, nil
}

func wrapPath(w *cdata.Writer, format cdata.Format, path string, stdin io.Reader) (int64, error) {
	if path == "-" {
		return wrap(w, format, stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return wrap(w, format, f)
}

// wrap writes r as escaped text for FormatRaw and as a streamed section
// otherwise.
func wrap(w *cdata.Writer, format cdata.Format, r io.Reader) (int64, error) {
	if format == cdata.FormatRaw {
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, err
		}
		return int64(len(data)), w.InsertText(data)
	}

	s, err := w.BeginStream(format)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(s, r)
	if err != nil {
		_ = w.EndStream()
		return n, err
	}
	return n, w.EndStream()
}
