// Package cdata serializes arbitrary text and binary payloads into XML CDATA
// sections for embedding in a host document.
//
// # Output Format
//
// A section is the literal "<![CDATA[" followed by the payload and the literal
// "]]>". A payload that itself contains "]]>" is split between the second ']'
// and the '>' into consecutive sections with nothing in between, so the
// concatenated section contents always equal the payload byte for byte:
//
//	payload:  a]]>b
//	output:   <![CDATA[a]]]]><![CDATA[>b]]>
//
// Streamed sections may instead carry MIME base64 text, broken into lines of
// 76 characters and always terminated by a line break before "]]>".
//
// # Basic Usage
//
// One-shot text:
//
//	w, _ := cdata.NewWriter(out)
//	err := w.InsertString("any text, even ]]> is fine")
//
// Streaming binary data:
//
//	s, err := w.BeginStream(cdata.FormatBase64)
//	if err != nil {
//		return err
//	}
//	if _, err := io.Copy(s, blob); err != nil {
//		return err
//	}
//	err = w.EndStream()
//
// Only one stream may be open at a time; BeginStream on an open stream fails
// with ErrStreamOpen and EndStream on a closed one is a no-op. The Stream
// handle stops accepting writes once EndStream returns.
//
// # Sinks
//
// Any io.Writer is a sink. StringWriter collects output in memory,
// CreateFile writes to a file compressed according to its extension
// (.zst, .lz4, .br, .gz, .sz), and ZipWriter writes into zip archive entries.
// Compression is applied to the file as a whole and never changes the
// section content.
package cdata
