package cdata

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidateEntryName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Document.xml", true},
		{"thumbnails/Thumbnail.png", true},
		{"", false},
		{"/abs", false},
		{"a\\b", false},
		{"a//b", false},
		{"a/./b", false},
		{"a/../b", false},
		{".", false},
		{"..", false},
		{"../x", false},
		{"a/", false},
		{"thumbnails/", false},
		{"C:/Document.xml", false},
		{"c:x", false},
		{"a\x00b", false},
		{strings.Repeat("a", maxEntryName), true},
		{strings.Repeat("a", maxEntryName+1), false},
		{"a:b.xml", true},
	}
	for _, tc := range cases {
		err := validateEntryName(tc.in)
		if tc.want && err != nil {
			t.Fatalf("%.40q: expected ok, got %v", tc.in, err)
		}
		if !tc.want && !errors.Is(err, ErrInvalidEntry) {
			t.Fatalf("%.40q: expected ErrInvalidEntry, got %v", tc.in, err)
		}
	}
}

func TestZipWriterRejectsBadEntryName(t *testing.T) {
	z, err := NewZipWriter(io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := z.NextEntry("../Document.xml"); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
	if err := z.InsertString("x"); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("rejected entry must not become current, got %v", err)
	}
}
