package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/mp3.go/pkg/cli/sh"
	"github.com/robotalks/mp3.go/pkg/l1/msgs"
)

func parseUint(arg, name string, max uint64) (uint32, error) {
	val, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	if val > max {
		return 0, fmt.Errorf("invalid %s: must not exceed %d", name, max)
	}
	return uint32(val), nil
}

func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expect on or off, got %q", arg)
}

var (
	// PlayCmd starts or resumes playback.
	PlayCmd = ishell.Cmd{
		Name: "play",
		Help: "[TRACK | FOLDER TRACK]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			var msg msgs.PlayerPlay
			var err error
			switch len(c.Args) {
			case 0:
			case 1:
				msg.Track, err = parseUint(c.Args[0], "TRACK", 255)
			default:
				if msg.Folder, err = parseUint(c.Args[0], "FOLDER", 255); err == nil {
					msg.Track, err = parseUint(c.Args[1], "TRACK", 255)
				}
			}
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// PauseCmd pauses playback.
	PauseCmd = ishell.Cmd{
		Name: "pause",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PlayerPause{})
		}),
	}

	// StopCmd stops playback.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PlayerStop{})
		}),
	}

	// NextCmd skips to the next track.
	NextCmd = ishell.Cmd{
		Name:    "next",
		Aliases: []string{"n"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PlayerNext{})
		}),
	}

	// PrevCmd skips to the previous track.
	PrevCmd = ishell.Cmd{
		Name:    "prev",
		Aliases: []string{"p"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PlayerPrev{})
		}),
	}

	// VolumeCmd sets the volume level, or steps it with +/-.
	VolumeCmd = ishell.Cmd{
		Name:    "volume",
		Aliases: []string{"vol"},
		Help:    "LEVEL | + | -",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("LEVEL required"))
				return
			}
			switch c.Args[0] {
			case "+":
				sh.DoCommand(c, &msgs.PlayerVolumeStep{})
			case "-":
				sh.DoCommand(c, &msgs.PlayerVolumeStep{Down: true})
			default:
				level, err := parseUint(c.Args[0], "LEVEL", 30)
				if err != nil {
					c.Err(err)
					return
				}
				sh.DoCommand(c, &msgs.PlayerSetVolume{Level: level})
			}
		}),
	}

	// MuteCmd mutes or unmutes output.
	MuteCmd = ishell.Cmd{
		Name: "mute",
		Help: "on|off",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			on := true
			if len(c.Args) > 0 {
				var err error
				if on, err = parseOnOff(c.Args[0]); err != nil {
					c.Err(err)
					return
				}
			}
			sh.DoCommand(c, &msgs.PlayerMute{On: on})
		}),
	}

	// EqualizerCmd sets the equalizer mode.
	EqualizerCmd = ishell.Cmd{
		Name:    "equalizer",
		Aliases: []string{"eq"},
		Help:    "MODE(0-5: normal pop rock jazz classic bass)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("MODE required"))
				return
			}
			mode, err := parseUint(c.Args[0], "MODE", 5)
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.PlayerSetEqualizer{Mode: mode})
		}),
	}

	// ShuffleCmd turns shuffle playback on/off.
	ShuffleCmd = ishell.Cmd{
		Name: "shuffle",
		Help: "on|off",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("on or off required"))
				return
			}
			on, err := parseOnOff(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.PlayerSetShuffle{On: on})
		}),
	}

	// RepeatCmd turns repeat of the current track on/off.
	RepeatCmd = ishell.Cmd{
		Name: "repeat",
		Help: "on|off",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("on or off required"))
				return
			}
			on, err := parseOnOff(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.PlayerSetRepeat{On: on})
		}),
	}

	// StatusCmd queries the player status.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.PlayerStatusQuery{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&PlayCmd,
		&PauseCmd,
		&StopCmd,
		&NextCmd,
		&PrevCmd,
		&VolumeCmd,
		&MuteCmd,
		&EqualizerCmd,
		&ShuffleCmd,
		&RepeatCmd,
		&StatusCmd,
	)
}
