package cdata

import (
	"bytes"
	"encoding/base64"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mimeReference is the expected encoder output: standard base64 broken into
// lines of n characters, each line terminated by brk.
func mimeReference(data []byte, n int, brk string) string {
	enc := base64.StdEncoding.EncodeToString(data)
	var sb strings.Builder
	for len(enc) > 0 {
		k := min(n, len(enc))
		sb.WriteString(enc[:k])
		sb.WriteString(brk)
		enc = enc[k:]
	}
	return sb.String()
}

func encodeAll(t *testing.T, data []byte, chunk, lineLen int) string {
	t.Helper()
	var buf bytes.Buffer
	e := newBase64Encoder(&buf, lineLen, "\n")
	for p := data; len(p) > 0; {
		k := min(chunk, len(p))
		n, err := e.Write(p[:k])
		if err != nil {
			t.Fatal(err)
		}
		if n != k {
			t.Fatalf("short write %d != %d", n, k)
		}
		p = p[k:]
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestBase64EncoderKnownVector(t *testing.T) {
	data := []byte("FreeCAD rocks! 🪨🪨🪨")
	got := encodeAll(t, data, len(data), DefaultLineLength)
	if want := "RnJlZUNBRCByb2NrcyEg8J+qqPCfqqjwn6qo\n"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestBase64EncoderPadding(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "YQ==\n"},
		{"ab", "YWI=\n"},
		{"abc", "YWJj\n"},
		{"abcd", "YWJjZA==\n"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			for chunk := 1; chunk <= 4; chunk++ {
				if got := encodeAll(t, []byte(tc.in), chunk, DefaultLineLength); got != tc.want {
					t.Fatalf("chunk=%d: want %q, got %q", chunk, tc.want, got)
				}
			}
		})
	}
}

func TestBase64EncoderLineBreaks(t *testing.T) {
	// 57 bytes encode to exactly one full line.
	full := bytes.Repeat([]byte{0xA5}, 57)
	got := encodeAll(t, full, 5, DefaultLineLength)
	if len(got) != 77 || strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
		t.Fatalf("unexpected full line %q", got)
	}

	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i * 7)
	}
	got = encodeAll(t, data, 100, DefaultLineLength)
	if diff := cmp.Diff(mimeReference(data, 76, "\n"), got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 || len(lines[0]) != 76 || len(lines[1]) != 60 {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestBase64EncoderMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, lineLen := range []int{4, 8, 76} {
		for i := 0; i < 200; i++ {
			data := make([]byte, rng.IntN(8000))
			for j := range data {
				data[j] = byte(rng.UintN(256))
			}
			chunk := 1 + rng.IntN(5000)
			got := encodeAll(t, data, chunk, lineLen)
			if diff := cmp.Diff(mimeReference(data, lineLen, "\n"), got); diff != "" {
				t.Fatalf("len=%d chunk=%d line=%d (-want +got):\n%s", len(data), chunk, lineLen, diff)
			}
		}
	}
}

func TestBase64EncoderLineBreakSequence(t *testing.T) {
	var buf bytes.Buffer
	e := newBase64Encoder(&buf, 8, "\r\n")
	if _, err := e.Write([]byte("abcdefghij")); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if want := mimeReference([]byte("abcdefghij"), 8, "\r\n"); buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestBase64EncoderStickyError(t *testing.T) {
	e := newBase64Encoder(errWriter{}, DefaultLineLength, "\n")
	if _, err := e.Write([]byte("abcdef")); err == nil {
		t.Fatal("expected error")
	}
	if _, err := e.Write([]byte("abc")); err != io.ErrClosedPipe {
		t.Fatalf("expected sticky error, got %v", err)
	}
	if err := e.Close(); err != io.ErrClosedPipe {
		t.Fatalf("expected sticky error on close, got %v", err)
	}
}

func TestBase64EncoderBuffersFringe(t *testing.T) {
	var buf bytes.Buffer
	e := newBase64Encoder(&buf, DefaultLineLength, "\n")
	if _, err := e.Write([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing emitted for a partial group, got %q", buf.String())
	}
	if _, err := e.Write([]byte("c")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "YWJj" {
		t.Fatalf("got %q", buf.String())
	}
}
