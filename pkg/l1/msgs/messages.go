package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/mp3.go/pkg/framework"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *CommandOK) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandOK) Reset() { *m = CommandOK{} }

// String implements proto.Message.
func (m *CommandOK) String() string { return proto.CompactTextString(m) }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{Message: message}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *CommandErr) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandErr) Reset() { *m = CommandErr{} }

// String implements proto.Message.
func (m *CommandErr) String() string { return proto.CompactTextString(m) }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// PlayerPlay starts playback. With Folder and Track zero it resumes,
// with Track only it plays that track, with both it plays the track
// inside the folder.
type PlayerPlay struct {
	Folder uint32 `protobuf:"varint,1,opt,name=folder,proto3" json:"folder,omitempty"`
	Track  uint32 `protobuf:"varint,2,opt,name=track,proto3" json:"track,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerPlay) NewMessage() fx.Message { return &PlayerPlay{} }

// TypeID implements SerializableMessage.
func (m *PlayerPlay) TypeID() uint32 { return PlayerPlayTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerPlay) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerPlay) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerPlay) Reset() { *m = PlayerPlay{} }

// String implements proto.Message.
func (m *PlayerPlay) String() string { return proto.CompactTextString(m) }

// PlayerPause pauses playback.
type PlayerPause struct {
}

// NewMessage implements Message.
func (m *PlayerPause) NewMessage() fx.Message { return &PlayerPause{} }

// TypeID implements SerializableMessage.
func (m *PlayerPause) TypeID() uint32 { return PlayerPauseTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerPause) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerPause) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerPause) Reset() { *m = PlayerPause{} }

// String implements proto.Message.
func (m *PlayerPause) String() string { return proto.CompactTextString(m) }

// PlayerStop stops playback.
type PlayerStop struct {
}

// NewMessage implements Message.
func (m *PlayerStop) NewMessage() fx.Message { return &PlayerStop{} }

// TypeID implements SerializableMessage.
func (m *PlayerStop) TypeID() uint32 { return PlayerStopTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStop) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStop) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStop) Reset() { *m = PlayerStop{} }

// String implements proto.Message.
func (m *PlayerStop) String() string { return proto.CompactTextString(m) }

// PlayerNext skips to the next track.
type PlayerNext struct {
}

// NewMessage implements Message.
func (m *PlayerNext) NewMessage() fx.Message { return &PlayerNext{} }

// TypeID implements SerializableMessage.
func (m *PlayerNext) TypeID() uint32 { return PlayerNextTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerNext) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerNext) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerNext) Reset() { *m = PlayerNext{} }

// String implements proto.Message.
func (m *PlayerNext) String() string { return proto.CompactTextString(m) }

// PlayerPrev skips to the previous track.
type PlayerPrev struct {
}

// NewMessage implements Message.
func (m *PlayerPrev) NewMessage() fx.Message { return &PlayerPrev{} }

// TypeID implements SerializableMessage.
func (m *PlayerPrev) TypeID() uint32 { return PlayerPrevTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerPrev) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerPrev) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerPrev) Reset() { *m = PlayerPrev{} }

// String implements proto.Message.
func (m *PlayerPrev) String() string { return proto.CompactTextString(m) }

// PlayerSetVolume sets the output volume level.
type PlayerSetVolume struct {
	Level uint32 `protobuf:"varint,1,opt,name=level,proto3" json:"level,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerSetVolume) NewMessage() fx.Message { return &PlayerSetVolume{} }

// TypeID implements SerializableMessage.
func (m *PlayerSetVolume) TypeID() uint32 { return PlayerSetVolumeTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerSetVolume) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerSetVolume) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerSetVolume) Reset() { *m = PlayerSetVolume{} }

// String implements proto.Message.
func (m *PlayerSetVolume) String() string { return proto.CompactTextString(m) }

// PlayerVolumeStep steps the volume one level up or down.
type PlayerVolumeStep struct {
	Down bool `protobuf:"varint,1,opt,name=down,proto3" json:"down,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerVolumeStep) NewMessage() fx.Message { return &PlayerVolumeStep{} }

// TypeID implements SerializableMessage.
func (m *PlayerVolumeStep) TypeID() uint32 { return PlayerVolumeStepTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerVolumeStep) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerVolumeStep) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerVolumeStep) Reset() { *m = PlayerVolumeStep{} }

// String implements proto.Message.
func (m *PlayerVolumeStep) String() string { return proto.CompactTextString(m) }

// PlayerMute mutes or unmutes the output.
type PlayerMute struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerMute) NewMessage() fx.Message { return &PlayerMute{} }

// TypeID implements SerializableMessage.
func (m *PlayerMute) TypeID() uint32 { return PlayerMuteTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerMute) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerMute) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerMute) Reset() { *m = PlayerMute{} }

// String implements proto.Message.
func (m *PlayerMute) String() string { return proto.CompactTextString(m) }

// PlayerSetEqualizer sets the equalizer mode [0..5].
type PlayerSetEqualizer struct {
	Mode uint32 `protobuf:"varint,1,opt,name=mode,proto3" json:"mode,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerSetEqualizer) NewMessage() fx.Message { return &PlayerSetEqualizer{} }

// TypeID implements SerializableMessage.
func (m *PlayerSetEqualizer) TypeID() uint32 { return PlayerSetEqualizerTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerSetEqualizer) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerSetEqualizer) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerSetEqualizer) Reset() { *m = PlayerSetEqualizer{} }

// String implements proto.Message.
func (m *PlayerSetEqualizer) String() string { return proto.CompactTextString(m) }

// PlayerSetShuffle turns shuffle playback on/off.
type PlayerSetShuffle struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerSetShuffle) NewMessage() fx.Message { return &PlayerSetShuffle{} }

// TypeID implements SerializableMessage.
func (m *PlayerSetShuffle) TypeID() uint32 { return PlayerSetShuffleTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerSetShuffle) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerSetShuffle) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerSetShuffle) Reset() { *m = PlayerSetShuffle{} }

// String implements proto.Message.
func (m *PlayerSetShuffle) String() string { return proto.CompactTextString(m) }

// PlayerSetRepeat turns repeat of the current track on/off.
type PlayerSetRepeat struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerSetRepeat) NewMessage() fx.Message { return &PlayerSetRepeat{} }

// TypeID implements SerializableMessage.
func (m *PlayerSetRepeat) TypeID() uint32 { return PlayerSetRepeatTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerSetRepeat) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerSetRepeat) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerSetRepeat) Reset() { *m = PlayerSetRepeat{} }

// String implements proto.Message.
func (m *PlayerSetRepeat) String() string { return proto.CompactTextString(m) }

// PlayerStatus is the controller's view of the device state.
type PlayerStatus struct {
	Playing      bool   `protobuf:"varint,1,opt,name=playing,proto3" json:"playing,omitempty"`
	Track        uint32 `protobuf:"varint,2,opt,name=track,proto3" json:"track,omitempty"`
	Volume       uint32 `protobuf:"varint,3,opt,name=volume,proto3" json:"volume,omitempty"`
	Equalizer    uint32 `protobuf:"varint,4,opt,name=equalizer,proto3" json:"equalizer,omitempty"`
	TotalFiles   uint32 `protobuf:"varint,5,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	TotalFolders uint32 `protobuf:"varint,6,opt,name=total_folders,json=totalFolders,proto3" json:"total_folders,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerStatus) NewMessage() fx.Message { return &PlayerStatus{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatus) TypeID() uint32 { return PlayerStatusTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatus) Reset() { *m = PlayerStatus{} }

// String implements proto.Message.
func (m *PlayerStatus) String() string { return proto.CompactTextString(m) }

// PlayerStatusQuery queries the cached player status.
type PlayerStatusQuery struct {
}

// NewMessage implements Message.
func (m *PlayerStatusQuery) NewMessage() fx.Message { return &PlayerStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatusQuery) TypeID() uint32 { return PlayerStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatusQuery) Reset() { *m = PlayerStatusQuery{} }

// String implements proto.Message.
func (m *PlayerStatusQuery) String() string { return proto.CompactTextString(m) }

// PlayerStatusReply is the response for PlayerStatusQuery.
type PlayerStatusReply struct {
	Status *PlayerStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerStatusReply) NewMessage() fx.Message { return &PlayerStatusReply{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatusReply) TypeID() uint32 { return PlayerStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatusReply) Reset() { *m = PlayerStatusReply{} }

// String implements proto.Message.
func (m *PlayerStatusReply) String() string { return proto.CompactTextString(m) }

// PlayerEvent is an event carrying a raw device status code and its
// data word, published for every status the engine dispatches.
type PlayerEvent struct {
	Code uint32 `protobuf:"varint,1,opt,name=code,proto3" json:"code,omitempty"`
	Data uint32 `protobuf:"varint,2,opt,name=data,proto3" json:"data,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerEvent) NewMessage() fx.Message { return &PlayerEvent{} }

// TypeID implements SerializableMessage.
func (m *PlayerEvent) TypeID() uint32 { return PlayerEventTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerEvent) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerEvent) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerEvent) Reset() { *m = PlayerEvent{} }

// String implements proto.Message.
func (m *PlayerEvent) String() string { return proto.CompactTextString(m) }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupPlayer  uint32 = 0x00020000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID          uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID         uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	PlayerPlayTypeID         uint32 = GroupPlayer | 0x0000
	PlayerPauseTypeID        uint32 = GroupPlayer | 0x0001
	PlayerStopTypeID         uint32 = GroupPlayer | 0x0002
	PlayerNextTypeID         uint32 = GroupPlayer | 0x0003
	PlayerPrevTypeID         uint32 = GroupPlayer | 0x0004
	PlayerSetVolumeTypeID    uint32 = GroupPlayer | 0x0005
	PlayerVolumeStepTypeID   uint32 = GroupPlayer | 0x0006
	PlayerMuteTypeID         uint32 = GroupPlayer | 0x0007
	PlayerSetEqualizerTypeID uint32 = GroupPlayer | 0x0008
	PlayerSetShuffleTypeID   uint32 = GroupPlayer | 0x0009
	PlayerSetRepeatTypeID    uint32 = GroupPlayer | 0x000a
	PlayerStatusQueryTypeID  uint32 = GroupPlayer | 0x000b
	PlayerStatusReplyTypeID  uint32 = PlayerStatusQueryTypeID | TypeIDMaskReply
	PlayerEventTypeID        uint32 = GroupPlayer | TypeIDKindEvent | 0x0000
	PlayerStatusTypeID       uint32 = GroupPlayer | TypeIDKindEvent | 0x0001
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
