package yx5300

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/mp3.go/pkg/l0/yx"
)

// Defaults of the simulated file store.
const (
	DefaultTotalFiles    = 12
	DefaultTotalFolders  = 3
	DefaultTrackDuration = 5 * time.Second
)

// Sim simulates the MP3 device behind the transport interface:
// frames written by the engine are parsed and answered the way the
// hardware answers, including unsolicited events like init and
// track-end reports.
type Sim struct {
	// TotalFiles and TotalFolders describe the simulated file store.
	TotalFiles   uint16
	TotalFolders uint16
	// TrackDuration is the play time of every track.
	TrackDuration time.Duration
	// Clock overrides the time source, for tests.
	Clock func() time.Time

	asm yx.Assembler
	out []byte

	volume    uint16
	equalizer uint16
	playing   bool
	paused    bool
	track     uint16
	repeat    bool
	sleeping  bool
	endAt     time.Time
}

// New creates a simulated device. It reports initialization complete
// as the hardware does after power-on.
func New() *Sim {
	s := &Sim{
		TotalFiles:    DefaultTotalFiles,
		TotalFolders:  DefaultTotalFolders,
		TrackDuration: DefaultTrackDuration,
		volume:        yx.MaxVolume / 2,
	}
	s.emit(yx.StsInit, uint16(yx.DevTF))
	return s
}

// Write implements Transport. Complete command frames are executed
// immediately and the response becomes readable.
func (s *Sim) Write(b []byte) (int, error) {
	for _, c := range b {
		fr := s.asm.Feed(c)
		if fr.State != yx.FeedFrame {
			continue
		}
		sts, err := yx.Decode(fr.Frame, true)
		if err != nil {
			glog.V(2).Infof("sim: dropping frame: %v", err)
			continue
		}
		s.exec(yx.Command(sts.Code), sts.Data)
	}
	return len(b), nil
}

// Available implements Transport. Track-end events surface here when
// the playing track runs out.
func (s *Sim) Available() int {
	s.advance()
	return len(s.out)
}

// ReadByte implements Transport.
func (s *Sim) ReadByte() (byte, error) {
	b := s.out[0]
	s.out = s.out[1:]
	return b, nil
}

// Now implements Transport.
func (s *Sim) Now() time.Time {
	return s.now()
}

func (s *Sim) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Sim) exec(cmd yx.Command, data uint16) {
	if s.sleeping && cmd != yx.CmdWake && cmd != yx.CmdReset {
		return
	}
	switch cmd {
	case yx.CmdNext:
		s.startTrack(s.track%s.TotalFiles + 1)
		s.ack()
	case yx.CmdPrev:
		track := s.track - 1
		if track < 1 {
			track = s.TotalFiles
		}
		s.startTrack(track)
		s.ack()
	case yx.CmdPlayIndex, yx.CmdPlayRepeat:
		track := data & 0xff
		if track < 1 || track > s.TotalFiles {
			s.emit(yx.StsErrFile, track)
			return
		}
		s.repeat = cmd == yx.CmdPlayRepeat
		s.startTrack(track)
		s.ack()
	case yx.CmdPlayFolderFile:
		folder := data >> 8
		if folder < 1 || folder > s.TotalFolders {
			s.emit(yx.StsErrFile, data&0xff)
			return
		}
		s.startTrack(data & 0xff)
		s.ack()
	case yx.CmdFolderRepeat, yx.CmdFolderShuffle:
		if folder := data >> 8; folder < 1 || folder > s.TotalFolders {
			s.emit(yx.StsErrFile, 0)
			return
		}
		s.startTrack(1)
		s.ack()
	case yx.CmdVolumeUp:
		if s.volume < yx.MaxVolume {
			s.volume++
		}
		s.ack()
	case yx.CmdVolumeDown:
		if s.volume > 0 {
			s.volume--
		}
		s.ack()
	case yx.CmdSetVolume:
		if s.volume = data & 0xff; s.volume > yx.MaxVolume {
			s.volume = yx.MaxVolume
		}
		s.ack()
	case yx.CmdSetEqualizer:
		s.equalizer = data & 0xff
		s.ack()
	case yx.CmdSelectDevice, yx.CmdSetDAC, yx.CmdShuffle:
		s.ack()
	case yx.CmdSetRepeat:
		s.repeat = byte(data) == yx.OptOn
		s.ack()
	case yx.CmdSleep:
		s.sleeping = true
		s.playing = false
		s.ack()
	case yx.CmdWake:
		s.sleeping = false
		s.ack()
	case yx.CmdReset:
		s.reset()
		s.ack()
		s.emit(yx.StsInit, uint16(yx.DevTF))
	case yx.CmdPlay:
		if s.paused {
			s.paused = false
			s.playing = true
			s.endAt = s.now().Add(s.TrackDuration)
		} else if s.track > 0 {
			s.startTrack(s.track)
		} else {
			s.startTrack(1)
		}
		s.ack()
	case yx.CmdPause:
		if s.playing {
			s.playing = false
			s.paused = true
		}
		s.ack()
	case yx.CmdStop:
		s.playing = false
		s.paused = false
		s.ack()
	case yx.CmdQueryStatus:
		var st uint16
		if s.playing {
			st = 1
		} else if s.paused {
			st = 2
		}
		s.emit(yx.StsStatus, uint16(yx.DevTF)<<8|st)
	case yx.CmdQueryVolume:
		s.emit(yx.StsVolume, s.volume)
	case yx.CmdQueryEqualizer:
		s.emit(yx.StsEqualizer, s.equalizer)
	case yx.CmdQueryTotFiles:
		s.emit(yx.StsTotFiles, s.TotalFiles)
	case yx.CmdQueryPlaying:
		s.emit(yx.StsPlaying, s.track)
	case yx.CmdQueryFldrFiles:
		var files uint16
		if s.TotalFolders > 0 {
			files = s.TotalFiles / s.TotalFolders
		}
		s.emit(yx.StsFldrFiles, files)
	case yx.CmdQueryTotFldr:
		s.emit(yx.StsTotFldr, s.TotalFolders)
	default:
		glog.V(2).Infof("sim: unknown command %#02x", byte(cmd))
	}
}

func (s *Sim) startTrack(track uint16) {
	s.track = track
	s.playing = true
	s.paused = false
	s.endAt = s.now().Add(s.TrackDuration)
}

func (s *Sim) reset() {
	s.playing = false
	s.paused = false
	s.sleeping = false
	s.repeat = false
	s.track = 0
	s.volume = yx.MaxVolume / 2
	s.equalizer = 0
}

func (s *Sim) advance() {
	if !s.playing || s.now().Before(s.endAt) {
		return
	}
	ended := s.track
	if s.repeat {
		s.endAt = s.now().Add(s.TrackDuration)
	} else {
		s.playing = false
	}
	s.emit(yx.StsFileEnd, ended)
}

func (s *Sim) ack() {
	s.emit(yx.StsAckOk, 0)
}

func (s *Sim) emit(code yx.StatusCode, data uint16) {
	pkt := yx.Packet{
		Cmd:   yx.Command(code),
		Data1: byte(data >> 8),
		Data2: byte(data),
	}
	s.out = append(s.out, pkt.Bytes()...)
}
