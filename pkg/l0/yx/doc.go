// Package yx provides L0 protocol support for YX5300 MP3 modules.
package yx

// The YX5300 protocol is communicated between the MP3 device firmware
// and an L1 controller over a byte-oriented serial link. Every exchange
// is a fixed 10-byte frame delimited by start/end marker bytes and
// protected by an optional 16-bit checksum.
//
// The device answers each command with an acknowledgment or a query
// result, and also emits unsolicited frames on its own initiative
// (card inserted/removed, track finished, initialization complete).
// Both kinds are surfaced as Status values through the same dispatch
// path; the engine synthesizes Timeout/Version/Checksum statuses for
// failures it detects itself.
//
// Producer: YX5300 firmware
// Consumer: L1 controller
