package cdata

import (
	"fmt"
	"log/slog"
)

type writerConfig struct {
	lineLength  int
	lineBreak   string
	logger      *slog.Logger
	compression Compression
	compSet     bool
}

// Option configures a Writer and the sinks built on top of it.
type Option func(*writerConfig)

func defaultConfig() writerConfig {
	return writerConfig{
		lineLength: DefaultLineLength,
		lineBreak:  defaultLineBreak,
	}
}

func newConfig(opts []Option) (writerConfig, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return writerConfig{}, err
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg, nil
}

func (c writerConfig) validate() error {
	// A line break may only fall between 4-character groups.
	if c.lineLength <= 0 || c.lineLength%4 != 0 {
		return fmt.Errorf("%w: line length %d must be a positive multiple of 4", ErrInvalidOption, c.lineLength)
	}
	if c.lineBreak == "" {
		return fmt.Errorf("%w: empty line break", ErrInvalidOption)
	}
	if !c.compression.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedCompression, c.compression)
	}
	return nil
}

// WithLineLength sets the number of base64 characters per line. Default 76.
func WithLineLength(n int) Option {
	return func(c *writerConfig) { c.lineLength = n }
}

// WithLineBreak sets the sequence written after each base64 line. Default "\n".
func WithLineBreak(s string) Option {
	return func(c *writerConfig) { c.lineBreak = s }
}

// WithLogger sets the logger used for stream lifecycle events. Logging is
// discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *writerConfig) { c.logger = l }
}

// WithCompression forces the compression used by CreateFile, overriding the
// choice derived from the file extension. Writers over plain sinks ignore it.
func WithCompression(comp Compression) Option {
	return func(c *writerConfig) {
		c.compression = comp
		c.compSet = true
	}
}
