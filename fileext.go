package cdata

import (
	"path/filepath"
	"strings"
)

const (
	ExtNone   = ""
	ExtZstd   = ".zst"
	ExtLZ4    = ".lz4"
	ExtBrotli = ".br"
	ExtGZIP   = ".gz"
	ExtSnappy = ".sz"
)

// ToFileExtension returns the file extension conventionally used for comp.
func ToFileExtension(comp Compression) string {
	switch comp {
	case CompZSTD:
		return ExtZstd
	case CompLZ4:
		return ExtLZ4
	case CompBR:
		return ExtBrotli
	case CompGZIP:
		return ExtGZIP
	case CompSnappy:
		return ExtSnappy
	default:
		return ExtNone
	}
}

// FromFileExtension picks the compression implied by the extension of path.
// Unknown extensions mean no compression.
func FromFileExtension(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtZstd:
		return CompZSTD
	case ExtLZ4:
		return CompLZ4
	case ExtBrotli:
		return CompBR
	case ExtGZIP:
		return CompGZIP
	case ExtSnappy:
		return CompSnappy
	default:
		return CompNone
	}
}
