package yx

import (
	"io"
)

// Command defines the type of outgoing operation codes.
type Command byte

// Commands understood by the device.
const (
	CmdNul            Command = 0x00 // no command
	CmdNext           Command = 0x01 // play next track
	CmdPrev           Command = 0x02 // play previous track
	CmdPlayIndex      Command = 0x03 // play track with index number
	CmdVolumeUp       Command = 0x04 // volume up one step
	CmdVolumeDown     Command = 0x05 // volume down one step
	CmdSetVolume      Command = 0x06 // set volume to specified level
	CmdSetEqualizer   Command = 0x07 // set equalizer to specified mode
	CmdPlayRepeat     Command = 0x08 // loop play specified track
	CmdSelectDevice   Command = 0x09 // select file storage device
	CmdSleep          Command = 0x0a // enter sleep mode
	CmdWake           Command = 0x0b // wake up from sleep mode
	CmdReset          Command = 0x0c // chip reset
	CmdPlay           Command = 0x0d // playback restart
	CmdPause          Command = 0x0e // playback pause
	CmdPlayFolderFile Command = 0x0f // play track in specified folder
	CmdStop           Command = 0x16 // playback stop
	CmdFolderRepeat   Command = 0x17 // loop playback of specified folder
	CmdShuffle        Command = 0x18 // shuffle playback
	CmdSetRepeat      Command = 0x19 // repeat on/off for current track
	CmdSetDAC         Command = 0x1a // DAC on/off control
	CmdPlayWithVolume Command = 0x22 // play track at specified volume
	CmdFolderShuffle  Command = 0x28 // shuffle playback of specified folder
	CmdQueryStatus    Command = 0x42 // query device status
	CmdQueryVolume    Command = 0x43 // query volume level
	CmdQueryEqualizer Command = 0x44 // query equalizer mode
	CmdQueryTotFiles  Command = 0x48 // query total files on the device
	CmdQueryPlaying   Command = 0x4c // query track currently playing
	CmdQueryFldrFiles Command = 0x4e // query total files in a folder
	CmdQueryTotFldr   Command = 0x4f // query number of folders
)

// StatusCode defines the type of status/result codes.
type StatusCode byte

// Status codes. The first four are synthesized locally, the rest are
// reported by the device and their values match the firmware exactly.
const (
	StsOk        StatusCode = 0x00 // no error
	StsTimeout   StatusCode = 0x01 // no response within the timeout budget
	StsVersion   StatusCode = 0x02 // wrong version byte in received frame, Data is the received byte
	StsChecksum  StatusCode = 0x03 // checksum mismatch in received frame, Data is the received checksum
	StsTfInsert  StatusCode = 0x3a // TF card inserted (unsolicited)
	StsTfRemove  StatusCode = 0x3b // TF card removed (unsolicited)
	StsFileEnd   StatusCode = 0x3d // track ended (unsolicited), Data is the track index
	StsInit      StatusCode = 0x3f // initialization complete (unsolicited), Data is available file stores
	StsErrFile   StatusCode = 0x40 // file not found, Data is the file index
	StsAckOk     StatusCode = 0x41 // command acknowledged ok
	StsStatus    StatusCode = 0x42 // device status, Data high byte is file store, low byte 0=stop 1=play 2=pause
	StsVolume    StatusCode = 0x43 // current volume level
	StsEqualizer StatusCode = 0x44 // current equalizer mode
	StsTotFiles  StatusCode = 0x48 // total file count
	StsPlaying   StatusCode = 0x4c // index of the track playing
	StsFldrFiles StatusCode = 0x4e // file count in a folder
	StsTotFldr   StatusCode = 0x4f // total folder count
)

// Status is the result of the last device operation. The meaning of
// Data depends on Code.
type Status struct {
	Code StatusCode
	Data uint16
}

// Protocol frame characters and options.
const (
	SOM     byte = 0x7e // start of message
	Version byte = 0xff // protocol version byte
	DataLen byte = 0x06 // data length in bytes (excluding SOM, EOM, checksum)
	EOM     byte = 0xef // end of message

	OptOn  byte = 0x00 // option value for "on" (device truth is inverted)
	OptOff byte = 0x01 // option value for "off"

	DevUDisk byte = 0x01 // storage option: U-disk
	DevTF    byte = 0x02 // storage option: TF card
	DevFlash byte = 0x04 // storage option: flash
)

// FrameLen is the fixed size of a frame on the wire.
const FrameLen = 10

// MaxVolume is the maximum volume level accepted by the device.
const MaxVolume = 30

// Packet contains the information of an outgoing command frame.
type Packet struct {
	Cmd   Command
	Data1 byte
	Data2 byte

	// NoChecksum leaves the checksum bytes zero instead of filling
	// them in.
	NoChecksum bool
}

// Bytes returns the encoded 10-byte frame for sending.
func (p *Packet) Bytes() []byte {
	b := []byte{
		SOM, Version, DataLen, byte(p.Cmd),
		1, // feedback requested
		p.Data1, p.Data2,
		0, 0,
		EOM,
	}
	if !p.NoChecksum {
		cks := Checksum(b)
		b[7], b[8] = byte(cks>>8), byte(cks)
	}
	return b
}

// WriteTo writes the encoded frame.
func (p *Packet) WriteTo(w io.Writer) (int, error) {
	return w.Write(p.Bytes())
}

// Checksum computes the frame checksum over bytes 1..6: the two's
// complement of their 16-bit sum.
func Checksum(frame []byte) uint16 {
	var sum uint16
	for _, b := range frame[1:7] {
		sum += uint16(b)
	}
	return -sum
}

// Decode validates a received frame and extracts the Status. With
// verifyChecksum false the checksum bytes are ignored.
func Decode(frame []byte, verifyChecksum bool) (Status, error) {
	if len(frame) != FrameLen || frame[0] != SOM || frame[FrameLen-1] != EOM {
		return Status{}, ErrDelimiter
	}
	if frame[1] != Version {
		return Status{}, &VersionError{Received: frame[1]}
	}
	if verifyChecksum {
		recv := uint16(frame[7])<<8 | uint16(frame[8])
		if cks := Checksum(frame); recv != cks {
			return Status{}, &ChecksumError{Received: recv, Computed: cks}
		}
	}
	return Status{
		Code: StatusCode(frame[3]),
		Data: uint16(frame[5])<<8 | uint16(frame[6]),
	}, nil
}
