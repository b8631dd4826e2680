package yx

// Play resumes or restarts playback.
func (e *Engine) Play() (bool, error) {
	return e.Send(CmdPlay, 0, 0)
}

// PlayTrack plays the track with the given index.
func (e *Engine) PlayTrack(track byte) (bool, error) {
	return e.Send(CmdPlayIndex, 0, track)
}

// PlayTrackRepeat loop-plays the track with the given index.
func (e *Engine) PlayTrackRepeat(track byte) (bool, error) {
	return e.Send(CmdPlayRepeat, 0, track)
}

// PlaySpecific plays a track from a specific folder.
func (e *Engine) PlaySpecific(folder, track byte) (bool, error) {
	return e.Send(CmdPlayFolderFile, folder, track)
}

// PlayFolderRepeat loop-plays all tracks in a folder.
func (e *Engine) PlayFolderRepeat(folder byte) (bool, error) {
	return e.Send(CmdFolderRepeat, folder, 0)
}

// PlayFolderShuffle shuffle-plays all tracks in a folder.
func (e *Engine) PlayFolderShuffle(folder byte) (bool, error) {
	return e.Send(CmdFolderShuffle, folder, 0)
}

// Pause pauses playback.
func (e *Engine) Pause() (bool, error) {
	return e.Send(CmdPause, 0, 0)
}

// Stop stops playback.
func (e *Engine) Stop() (bool, error) {
	return e.Send(CmdStop, 0, 0)
}

// Next plays the next track.
func (e *Engine) Next() (bool, error) {
	return e.Send(CmdNext, 0, 0)
}

// Prev plays the previous track.
func (e *Engine) Prev() (bool, error) {
	return e.Send(CmdPrev, 0, 0)
}

// Volume sets the output volume, clamped to [0, MaxVolume].
func (e *Engine) Volume(vol byte) (bool, error) {
	if vol > MaxVolume {
		vol = MaxVolume
	}
	return e.Send(CmdSetVolume, 0, vol)
}

// VolumeMax gets the maximum volume level.
func (e *Engine) VolumeMax() byte {
	return MaxVolume
}

// VolumeUp increments the volume by one.
func (e *Engine) VolumeUp() (bool, error) {
	return e.Send(CmdVolumeUp, 0, 0)
}

// VolumeDown decrements the volume by one.
func (e *Engine) VolumeDown() (bool, error) {
	return e.Send(CmdVolumeDown, 0, 0)
}

// VolumeMute mutes or unmutes output by switching the DAC.
func (e *Engine) VolumeMute(mute bool) (bool, error) {
	return e.Send(CmdSetDAC, 0, option(!mute))
}

// Equalizer modes.
const (
	EqNormal byte = iota
	EqPop
	EqRock
	EqJazz
	EqClassic
	EqBass
)

// Equalizer sets the equalizer mode. Modes outside [0,5] select
// EqNormal.
func (e *Engine) Equalizer(mode byte) (bool, error) {
	if mode > EqBass {
		mode = EqNormal
	}
	return e.Send(CmdSetEqualizer, 0, mode)
}

// Shuffle turns shuffle playback on or off.
func (e *Engine) Shuffle(on bool) (bool, error) {
	return e.Send(CmdShuffle, 0, option(on))
}

// Repeat turns repeat of the current track on or off.
func (e *Engine) Repeat(on bool) (bool, error) {
	return e.Send(CmdSetRepeat, 0, option(on))
}

// Sleep puts the device into sleep mode.
func (e *Engine) Sleep() (bool, error) {
	return e.Send(CmdSleep, 0, 0)
}

// Wake wakes the device up from sleep mode.
func (e *Engine) Wake() (bool, error) {
	return e.Send(CmdWake, 0, 0)
}

// Reset resets the device.
func (e *Engine) Reset() (bool, error) {
	return e.Send(CmdReset, 0, 0)
}

// Device selects the file storage device (normally DevTF).
func (e *Engine) Device(dev byte) (bool, error) {
	return e.Send(CmdSelectDevice, 0, dev)
}

// QueryStatus requests the current device status (StsStatus).
func (e *Engine) QueryStatus() (bool, error) {
	return e.Send(CmdQueryStatus, 0, 0)
}

// QueryVolume requests the current volume level (StsVolume).
func (e *Engine) QueryVolume() (bool, error) {
	return e.Send(CmdQueryVolume, 0, 0)
}

// QueryEqualizer requests the current equalizer mode (StsEqualizer).
func (e *Engine) QueryEqualizer() (bool, error) {
	return e.Send(CmdQueryEqualizer, 0, 0)
}

// QueryFilesCount requests the total file count (StsTotFiles).
func (e *Engine) QueryFilesCount() (bool, error) {
	return e.Send(CmdQueryTotFiles, 0, 0)
}

// QueryFile requests the index of the track playing (StsPlaying).
func (e *Engine) QueryFile() (bool, error) {
	return e.Send(CmdQueryPlaying, 0, 0)
}

// QueryFolderFiles requests the file count of a folder (StsFldrFiles).
func (e *Engine) QueryFolderFiles(folder byte) (bool, error) {
	return e.Send(CmdQueryFldrFiles, 0, folder)
}

// QueryFolderCount requests the total folder count (StsTotFldr).
func (e *Engine) QueryFolderCount() (bool, error) {
	return e.Send(CmdQueryTotFldr, 0, 0)
}

func option(on bool) byte {
	if on {
		return OptOn
	}
	return OptOff
}
