// Package player implements the L1 controller for an MP3 player
// device. It owns the protocol engine, polls the serial link from the
// controlling loop, translates received commands into device
// operations and publishes device events.
package player
