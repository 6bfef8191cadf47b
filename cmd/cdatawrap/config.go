package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-cdata"
)

// Config is the YAML configuration of cdatawrap. Flags override it.
type Config struct {
	Format      string `yaml:"format"`
	LineLength  int    `yaml:"line_length"`
	LineBreak   string `yaml:"line_break"`
	Compression string `yaml:"compression"`
	Output      string `yaml:"output"`
	LogLevel    string `yaml:"log_level"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Options translates c into writer options.
func (c Config) Options(logger *slog.Logger) ([]cdata.Option, error) {
	opts := []cdata.Option{cdata.WithLogger(logger)}
	if c.LineLength != 0 {
		opts = append(opts, cdata.WithLineLength(c.LineLength))
	}
	if c.LineBreak != "" {
		opts = append(opts, cdata.WithLineBreak(c.LineBreak))
	}
	if c.Compression != "" {
		comp, err := cdata.ParseCompression(c.Compression)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cdata.WithCompression(comp))
	}
	return opts, nil
}
