package yx

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy indicates a request is already outstanding.
	// The protocol supports a single request in flight; the caller
	// must wait for the response or the timeout before sending again.
	ErrBusy = errors.New("request outstanding")
	// ErrDelimiter indicates a received frame has bad start/end markers.
	ErrDelimiter = errors.New("bad frame delimiter")
)

// VersionError indicates the version byte in a received frame is wrong.
type VersionError struct {
	Received byte
}

// Error implements error.
func (e *VersionError) Error() string {
	return fmt.Sprintf("bad version byte %#02x", e.Received)
}

// ChecksumError indicates the checksum in a received frame is wrong.
type ChecksumError struct {
	Received uint16
	Computed uint16
}

// Error implements error.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("bad checksum %#04x, computed %#04x", e.Received, e.Computed)
}
