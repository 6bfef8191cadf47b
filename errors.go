package cdata

import (
	"errors"
	"fmt"
)

// ErrProtocolViolation is matched by every misuse of the stream protocol.
var ErrProtocolViolation = errors.New("cdata: protocol violation")

var (
	ErrStreamOpen   = fmt.Errorf("%w: stream already open", ErrProtocolViolation)
	ErrNoStream     = fmt.Errorf("%w: no stream open", ErrProtocolViolation)
	ErrStreamClosed = fmt.Errorf("%w: stream handle used after end", ErrProtocolViolation)
)

var (
	ErrInvalidFormat          = errors.New("cdata: invalid format")
	ErrInvalidOption          = errors.New("cdata: invalid option")
	ErrUnsupportedCompression = errors.New("cdata: unsupported compression")
)

var (
	ErrNoEntry      = errors.New("cdata: no archive entry")
	ErrInvalidEntry = errors.New("cdata: invalid archive entry name")
)
