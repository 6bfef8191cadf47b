package cdata

import (
	"fmt"
	"path"
	"strings"
)

// maxEntryName is the limit of the zip header's name length field.
const maxEntryName = 0xFFFF

// validateEntryName checks that an archive entry name refers to a file (not
// a directory entry) by a normalized, relative, forward-slash path that stays
// inside the archive.
func validateEntryName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidEntry)
	case len(name) > maxEntryName:
		return fmt.Errorf("%w: name is %d bytes long", ErrInvalidEntry, len(name))
	case strings.HasSuffix(name, "/"):
		return fmt.Errorf("%w: %q names a directory", ErrInvalidEntry, name)
	case strings.HasPrefix(name, "/"):
		return fmt.Errorf("%w: %q must not be absolute", ErrInvalidEntry, name)
	case strings.ContainsRune(name, '\\'):
		return fmt.Errorf("%w: %q must use forward slashes", ErrInvalidEntry, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidEntry, name)
	case hasVolumeName(name):
		return fmt.Errorf("%w: %q must not carry a drive letter", ErrInvalidEntry, name)
	}

	clean := path.Clean(name)
	if clean != name {
		return fmt.Errorf("%w: %q must be normalized as %q", ErrInvalidEntry, name, clean)
	}
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q must stay inside the archive", ErrInvalidEntry, name)
	}
	return nil
}

// hasVolumeName reports a leading "C:" style drive, which extractors on
// Windows resolve outside the target directory.
func hasVolumeName(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0] | 0x20
	return c >= 'a' && c <= 'z'
}
