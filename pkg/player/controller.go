package player

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l0/yx"
	"github.com/robotalks/mp3.go/pkg/l1"
	env "github.com/robotalks/mp3.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/mp3.go/pkg/l1/msgs"
)

// DefaultRefreshInterval paces the background status queries keeping
// the cached status current.
const DefaultRefreshInterval = 2 * time.Second

// Controller is the L1 controller bridging the protocol engine to the
// message loop. The engine runs asynchronously and is only touched
// from loop iterations, so no locking is needed around it.
type Controller struct {
	Env *env.Env
	// InitialVolume is applied after device initialization, -1 skips.
	InitialVolume int
	// RefreshInterval is the pace of background status queries.
	RefreshInterval time.Duration

	engine  *yx.Engine
	status  l1msgs.PlayerStatus
	events  []fx.Message
	pending *pendingCommand

	started   bool
	refresh   int
	refreshAt time.Time

	statusChanged bool
}

// refresh query cycle, one query per RefreshInterval.
var refreshOps = []func(*yx.Engine) (bool, error){
	(*yx.Engine).QueryStatus,
	(*yx.Engine).QueryVolume,
	(*yx.Engine).QueryFile,
	(*yx.Engine).QueryFilesCount,
}

// NewController creates a Controller over the transport.
func NewController(e *env.Env, t yx.Transport) *Controller {
	ctl := &Controller{
		Env:             e,
		InitialVolume:   -1,
		RefreshInterval: DefaultRefreshInterval,
		engine:          yx.NewEngine(t),
	}
	ctl.engine.Synchronous = false
	ctl.engine.Listener = yx.HandleStatusFunc(ctl.handleStatus)
	return ctl
}

// Engine exposes the protocol engine, for tests and tooling.
func (c *Controller) Engine() *yx.Engine {
	return c.engine
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvPoll, fx.ControlFunc(c.poll))
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvNotify, fx.ControlFunc(c.notify))
}

// Close closes the transport if it owns a resource.
func (c *Controller) Close() error {
	if closer, ok := c.engine.Transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Controller) poll(cc fx.ControlContext) error {
	if !c.started {
		c.started = true
		if err := c.begin(cc); err != nil {
			return err
		}
	}
	if _, err := c.engine.Poll(); err != nil {
		glog.Errorf("poll error: %v", err)
		return err
	}
	if c.pending == nil && !c.engine.Busy() && cc.Time().After(c.refreshAt) {
		op := refreshOps[c.refresh%len(refreshOps)]
		c.refresh++
		c.refreshAt = cc.Time().Add(c.RefreshInterval)
		if _, err := op(c.engine); err != nil {
			glog.Errorf("refresh query error: %v", err)
			return err
		}
		c.pending = &pendingCommand{}
	}
	return nil
}

// begin runs the device bring-up synchronously. The replies prime the
// status cache through the engine listener.
func (c *Controller) begin(cc fx.ControlContext) error {
	c.engine.Synchronous = true
	defer func() { c.engine.Synchronous = false }()
	if err := c.engine.Begin(cc.Context()); err != nil {
		return err
	}
	if c.InitialVolume >= 0 {
		c.engine.Volume(byte(c.InitialVolume))
	}
	c.engine.QueryVolume()
	c.engine.QueryEqualizer()
	c.engine.QueryFilesCount()
	c.engine.QueryFolderCount()
	c.engine.QueryStatus()
	return nil
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		if taken := c.dispatch(cmdMsg.Command); taken {
			mctx.MessageTaken()
		}
	}))
	return nil
}

// dispatch maps a received command onto a device operation. It reports
// false for commands it does not understand, leaving them for the
// catch-all at idle priority.
func (c *Controller) dispatch(cmd l1.Command) bool {
	var sent bool
	var err error
	switch m := cmd.Msg().(type) {
	case *l1msgs.PlayerStatusQuery:
		// served from the cache, no device round-trip.
		status := c.status
		cmd.Done(&l1msgs.PlayerStatusReply{Status: &status})
		return true
	case *l1msgs.PlayerPlay:
		if c.busy(cmd) {
			return true
		}
		switch {
		case m.Folder != 0:
			sent, err = c.engine.PlaySpecific(byte(m.Folder), byte(m.Track))
		case m.Track != 0:
			sent, err = c.engine.PlayTrack(byte(m.Track))
		default:
			sent, err = c.engine.Play()
		}
	case *l1msgs.PlayerPause:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Pause()
	case *l1msgs.PlayerStop:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Stop()
	case *l1msgs.PlayerNext:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Next()
	case *l1msgs.PlayerPrev:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Prev()
	case *l1msgs.PlayerSetVolume:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Volume(byte(m.Level))
	case *l1msgs.PlayerVolumeStep:
		if c.busy(cmd) {
			return true
		}
		if m.Down {
			sent, err = c.engine.VolumeDown()
		} else {
			sent, err = c.engine.VolumeUp()
		}
	case *l1msgs.PlayerMute:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.VolumeMute(m.On)
	case *l1msgs.PlayerSetEqualizer:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Equalizer(byte(m.Mode))
	case *l1msgs.PlayerSetShuffle:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Shuffle(m.On)
	case *l1msgs.PlayerSetRepeat:
		if c.busy(cmd) {
			return true
		}
		sent, err = c.engine.Repeat(m.On)
	default:
		return false
	}
	if err != nil {
		cmd.Done(l1msgs.NewCommandErr(err))
		return true
	}
	if !sent {
		cmd.Done(l1msgs.NewCommandErrFromMsg("command not sent"))
		return true
	}
	c.pending = &pendingCommand{cmd: cmd}
	return true
}

// busy rejects a command while another one is outstanding.
func (c *Controller) busy(cmd l1.Command) bool {
	if c.pending != nil && c.pending.cmd != nil {
		cmd.Done(l1msgs.NewCommandErr(yx.ErrBusy))
		return true
	}
	return false
}

// handleStatus is invoked by the engine for every dispatched status,
// from within Poll or a synchronous Send.
func (c *Controller) handleStatus(sts yx.Status) {
	c.updateStatus(sts)
	if unsolicited(sts.Code) {
		c.events = append(c.events, &l1msgs.PlayerEvent{
			Code: uint32(sts.Code),
			Data: uint32(sts.Data),
		})
		return
	}
	if p := c.pending; p != nil {
		c.pending = nil
		if p.cmd != nil {
			p.cmd.Done(commandReply(sts))
		}
	}
}

func (c *Controller) updateStatus(sts yx.Status) {
	switch sts.Code {
	case yx.StsStatus:
		c.setPlaying(sts.Data&0xff == 1)
	case yx.StsVolume:
		c.setUint(&c.status.Volume, uint32(sts.Data))
	case yx.StsEqualizer:
		c.setUint(&c.status.Equalizer, uint32(sts.Data))
	case yx.StsTotFiles:
		c.setUint(&c.status.TotalFiles, uint32(sts.Data))
	case yx.StsTotFldr:
		c.setUint(&c.status.TotalFolders, uint32(sts.Data))
	case yx.StsPlaying:
		c.setUint(&c.status.Track, uint32(sts.Data))
	case yx.StsFileEnd:
		c.setUint(&c.status.Track, uint32(sts.Data))
		c.setPlaying(false)
	case yx.StsTfRemove:
		c.setPlaying(false)
	}
}

func (c *Controller) setPlaying(playing bool) {
	if c.status.Playing != playing {
		c.status.Playing = playing
		c.statusChanged = true
	}
}

func (c *Controller) setUint(field *uint32, val uint32) {
	if *field != val {
		*field = val
		c.statusChanged = true
	}
}

// notify publishes collected device events and status changes.
func (c *Controller) notify(cc fx.ControlContext) error {
	events := c.events
	c.events = nil
	if c.statusChanged {
		c.statusChanged = false
		status := c.status
		events = append(events, &status)
	}
	var errs fx.AggregatedError
	for _, ev := range events {
		errs.Add(c.Env.Registrar.SendEvent(cc.Context(), ev))
	}
	return errs.Aggregate()
}

type pendingCommand struct {
	// cmd is nil for background refresh queries.
	cmd l1.Command
}

// unsolicited reports whether the device emits the code on its own
// rather than in response to a request.
func unsolicited(code yx.StatusCode) bool {
	switch code {
	case yx.StsTfInsert, yx.StsTfRemove, yx.StsFileEnd, yx.StsInit:
		return true
	}
	return false
}

// commandReply shapes the terminal status of a request into the reply
// message.
func commandReply(sts yx.Status) fx.Message {
	switch sts.Code {
	case yx.StsTimeout:
		return l1msgs.NewCommandErrFromMsg("device timeout")
	case yx.StsVersion:
		return l1msgs.NewCommandErrFromMsg(fmt.Sprintf("bad version byte: %#02x", byte(sts.Data)))
	case yx.StsChecksum:
		return l1msgs.NewCommandErrFromMsg(fmt.Sprintf("checksum mismatch: %#04x", sts.Data))
	case yx.StsErrFile:
		return l1msgs.NewCommandErrFromMsg(fmt.Sprintf("file not found: %d", sts.Data))
	default:
		return l1msgs.NewCommandOK()
	}
}
