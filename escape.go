package cdata

import "bytes"

var (
	openMarker  = []byte(OpenMarker)
	closeMarker = []byte(CloseMarker)
)

// SplitChunks splits src into the runs of bytes that are each safe to place
// inside a single CDATA section. Every occurrence of "]]>" is cut between the
// second ']' and the '>'. Concatenating the chunks yields src. An empty src
// yields a single empty chunk.
func SplitChunks(src []byte) [][]byte {
	chunks := make([][]byte, 0, 1)
	for {
		i := bytes.Index(src, closeMarker)
		if i < 0 {
			return append(chunks, src)
		}
		chunks = append(chunks, src[:i+2])
		src = src[i+2:]
	}
}

// Escape appends src to dst as one or more complete CDATA sections and
// returns the extended slice. Content bytes are copied unmodified.
func Escape(dst, src []byte) []byte {
	for _, chunk := range SplitChunks(src) {
		dst = append(dst, openMarker...)
		dst = append(dst, chunk...)
		dst = append(dst, closeMarker...)
	}
	return dst
}

// EscapedLen returns the number of bytes Escape appends for src.
func EscapedLen(src []byte) int {
	sections := 1 + bytes.Count(src, closeMarker)
	return len(src) + sections*(len(OpenMarker)+len(CloseMarker))
}
