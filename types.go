package cdata

import "fmt"

// Section delimiters.
const (
	OpenMarker  = "<![CDATA["
	CloseMarker = "]]>"
)

const (
	// DefaultLineLength is the MIME base64 line length.
	DefaultLineLength = 76

	defaultLineBreak = "\n"
)

// Format selects the transport encoding of a streamed section.
type Format uint8

const (
	FormatRaw    Format = 0x0
	FormatBase64 Format = 0x1
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatBase64:
		return "base64"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

func (f Format) valid() bool {
	return f == FormatRaw || f == FormatBase64
}

// ParseFormat maps a format name ("raw", "base64") to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "raw":
		return FormatRaw, nil
	case "base64":
		return FormatBase64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Compression is the container-level compression applied by file sinks.
// It never affects the section content itself.
type Compression uint16

const (
	CompNone   Compression = 0x0
	CompZSTD   Compression = 0x1
	CompLZ4    Compression = 0x2
	CompBR     Compression = 0x3
	CompGZIP   Compression = 0x4
	CompSnappy Compression = 0x5
)
