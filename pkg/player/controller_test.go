package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l0/yx"
	"github.com/robotalks/mp3.go/pkg/l1"
	"github.com/robotalks/mp3.go/pkg/l1/comm"
	env "github.com/robotalks/mp3.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/mp3.go/pkg/l1/msgs"
)

// fakeDevice is a scripted transport: every written command frame is
// answered with the statuses from respond. The clock advances with
// each Now call so timeouts terminate.
type fakeDevice struct {
	writes  []yx.Command
	pending []byte
	now     time.Time
	respond map[yx.Command][]yx.Status
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		now:     time.Unix(0, 0),
		respond: make(map[yx.Command][]yx.Status),
	}
}

func (d *fakeDevice) ack(cmds ...yx.Command) *fakeDevice {
	for _, cmd := range cmds {
		d.respond[cmd] = []yx.Status{{Code: yx.StsAckOk}}
	}
	return d
}

func (d *fakeDevice) reply(cmd yx.Command, sts ...yx.Status) *fakeDevice {
	d.respond[cmd] = sts
	return d
}

func (d *fakeDevice) inject(sts ...yx.Status) {
	for _, s := range sts {
		d.pending = append(d.pending, statusFrame(s)...)
	}
}

func (d *fakeDevice) Write(b []byte) (int, error) {
	cmd := yx.Command(b[3])
	d.writes = append(d.writes, cmd)
	d.inject(d.respond[cmd]...)
	return len(b), nil
}

func (d *fakeDevice) Available() int { return len(d.pending) }

func (d *fakeDevice) ReadByte() (byte, error) {
	b := d.pending[0]
	d.pending = d.pending[1:]
	return b, nil
}

func (d *fakeDevice) Now() time.Time {
	d.now = d.now.Add(time.Millisecond)
	return d.now
}

func statusFrame(sts yx.Status) []byte {
	pkt := yx.Packet{
		Cmd:   yx.Command(sts.Code),
		Data1: byte(sts.Data >> 8),
		Data2: byte(sts.Data),
	}
	return pkt.Bytes()
}

// testCtl is a minimal ControlContext over an in-memory message list.
type testCtl struct {
	ctx  context.Context
	time time.Time
	msgs []fx.Message
}

func newTestCtl() *testCtl {
	return &testCtl{ctx: context.Background(), time: time.Unix(0, 0)}
}

func (c *testCtl) Time() time.Time                 { return c.time }
func (c *testCtl) Context() context.Context        { return c.ctx }
func (c *testCtl) PriorityLevel() int              { return 0 }
func (c *testCtl) Messages() fx.MessageStore       { return c }
func (c *testCtl) PostRun(...fx.Controller)        {}
func (c *testCtl) PreRunAt(int, ...fx.Controller)  {}
func (c *testCtl) PostRunAt(int, ...fx.Controller) {}
func (c *testCtl) PostMessage(msg fx.Message)      { c.msgs = append(c.msgs, msg) }
func (c *testCtl) TriggerNext()                    {}
func (c *testCtl) AddMessages(msgs ...fx.Message)  { c.msgs = append(c.msgs, msgs...) }
func (c *testCtl) ProcessMessages(p fx.MessageProcessor) {
	msgs := c.msgs
	c.msgs = nil
	for _, msg := range msgs {
		mctx := &testMsgCtx{ctl: c, msg: msg}
		p.ProcessMessage(mctx)
		if !mctx.taken {
			c.msgs = append(c.msgs, msg)
		}
	}
}

type testMsgCtx struct {
	ctl   *testCtl
	msg   fx.Message
	taken bool
}

func (m *testMsgCtx) CurrentMessage() fx.Message     { return m.msg }
func (m *testMsgCtx) MessageTaken()                  { m.taken = true }
func (m *testMsgCtx) StopProcessing()                {}
func (m *testMsgCtx) AddMessages(msgs ...fx.Message) { m.ctl.AddMessages(msgs...) }

// testCommand records the reply passed to Done.
type testCommand struct {
	msg     fx.Message
	replies []fx.Message
}

func (c *testCommand) Msg() fx.Message { return c.msg }

func (c *testCommand) Done(msg fx.Message) error {
	c.replies = append(c.replies, msg)
	return nil
}

type eventRecorder struct {
	events []fx.Message
}

func (r *eventRecorder) SendEvent(ctx context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

func newTestController(dev *fakeDevice) (*Controller, *eventRecorder) {
	rec := &eventRecorder{}
	e := &env.Env{Registrar: &comm.RegistrarMux{}}
	e.Registrar.Add(rec)
	ctl := NewController(e, dev)
	ctl.started = true // skip device bring-up
	// keep background refresh out of the way unless a test wants it.
	ctl.refreshAt = time.Unix(0, 0).Add(time.Hour)
	return ctl, rec
}

func postCommand(cc *testCtl, msg fx.Message) *testCommand {
	cmd := &testCommand{msg: msg}
	cc.msgs = append(cc.msgs, &l1.CommandMsg{Command: cmd})
	return cmd
}

func TestControllerCommands(t *testing.T) {
	testCases := []struct {
		name string
		msg  fx.Message
		cmd  yx.Command
	}{
		{"play", &l1msgs.PlayerPlay{}, yx.CmdPlay},
		{"play track", &l1msgs.PlayerPlay{Track: 5}, yx.CmdPlayIndex},
		{"play folder track", &l1msgs.PlayerPlay{Folder: 2, Track: 5}, yx.CmdPlayFolderFile},
		{"pause", &l1msgs.PlayerPause{}, yx.CmdPause},
		{"stop", &l1msgs.PlayerStop{}, yx.CmdStop},
		{"next", &l1msgs.PlayerNext{}, yx.CmdNext},
		{"prev", &l1msgs.PlayerPrev{}, yx.CmdPrev},
		{"set volume", &l1msgs.PlayerSetVolume{Level: 15}, yx.CmdSetVolume},
		{"volume up", &l1msgs.PlayerVolumeStep{}, yx.CmdVolumeUp},
		{"volume down", &l1msgs.PlayerVolumeStep{Down: true}, yx.CmdVolumeDown},
		{"mute", &l1msgs.PlayerMute{On: true}, yx.CmdSetDAC},
		{"equalizer", &l1msgs.PlayerSetEqualizer{Mode: 2}, yx.CmdSetEqualizer},
		{"shuffle", &l1msgs.PlayerSetShuffle{On: true}, yx.CmdShuffle},
		{"repeat", &l1msgs.PlayerSetRepeat{On: true}, yx.CmdSetRepeat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dev := newFakeDevice().ack(tc.cmd)
			ctl, _ := newTestController(dev)
			cc := newTestCtl()
			cmd := postCommand(cc, tc.msg)

			require.NoError(t, ctl.Control(cc))
			require.Equal(t, []yx.Command{tc.cmd}, dev.writes)
			require.NoError(t, ctl.poll(cc))
			require.Equal(t, []fx.Message{l1msgs.NewCommandOK()}, cmd.replies)
			require.Nil(t, ctl.pending)
		})
	}
}

func TestControllerStatusQueryCached(t *testing.T) {
	dev := newFakeDevice()
	ctl, _ := newTestController(dev)
	ctl.status = l1msgs.PlayerStatus{Playing: true, Track: 3, Volume: 12}
	cc := newTestCtl()
	cmd := postCommand(cc, &l1msgs.PlayerStatusQuery{})

	require.NoError(t, ctl.Control(cc))
	// no device round-trip.
	require.Empty(t, dev.writes)
	require.Len(t, cmd.replies, 1)
	reply := cmd.replies[0].(*l1msgs.PlayerStatusReply)
	require.Equal(t, &l1msgs.PlayerStatus{Playing: true, Track: 3, Volume: 12}, reply.Status)
}

func TestControllerBusyRejected(t *testing.T) {
	dev := newFakeDevice() // no response scripted
	ctl, _ := newTestController(dev)
	cc := newTestCtl()
	first := postCommand(cc, &l1msgs.PlayerPlay{})
	second := postCommand(cc, &l1msgs.PlayerPause{})

	require.NoError(t, ctl.Control(cc))
	require.Empty(t, first.replies)
	require.Len(t, second.replies, 1)
	replyErr := second.replies[0].(*l1msgs.CommandErr)
	require.Equal(t, yx.ErrBusy.Error(), replyErr.Message)
}

func TestControllerCommandTimeout(t *testing.T) {
	dev := newFakeDevice()
	ctl, _ := newTestController(dev)
	ctl.engine.Timeout = 5 * time.Millisecond
	cc := newTestCtl()
	cmd := postCommand(cc, &l1msgs.PlayerStop{})

	require.NoError(t, ctl.Control(cc))
	for len(cmd.replies) == 0 {
		require.NoError(t, ctl.poll(cc))
	}
	replyErr := cmd.replies[0].(*l1msgs.CommandErr)
	require.Equal(t, "device timeout", replyErr.Message)
	require.Nil(t, ctl.pending)
}

func TestControllerErrFileReply(t *testing.T) {
	dev := newFakeDevice().reply(yx.CmdPlayIndex, yx.Status{Code: yx.StsErrFile, Data: 9})
	ctl, _ := newTestController(dev)
	cc := newTestCtl()
	cmd := postCommand(cc, &l1msgs.PlayerPlay{Track: 9})

	require.NoError(t, ctl.Control(cc))
	require.NoError(t, ctl.poll(cc))
	require.Len(t, cmd.replies, 1)
	replyErr := cmd.replies[0].(*l1msgs.CommandErr)
	require.Equal(t, "file not found: 9", replyErr.Message)
}

func TestControllerUnsolicitedEvents(t *testing.T) {
	dev := newFakeDevice()
	ctl, rec := newTestController(dev)
	cc := newTestCtl()

	dev.inject(yx.Status{Code: yx.StsFileEnd, Data: 7})
	require.NoError(t, ctl.poll(cc))
	require.NoError(t, ctl.notify(cc))

	require.Len(t, rec.events, 2)
	require.Equal(t, &l1msgs.PlayerEvent{Code: uint32(yx.StsFileEnd), Data: 7}, rec.events[0])
	status := rec.events[1].(*l1msgs.PlayerStatus)
	require.Equal(t, uint32(7), status.Track)
	require.False(t, status.Playing)
}

func TestControllerEventKeepsCommandPending(t *testing.T) {
	dev := newFakeDevice().reply(yx.CmdPause,
		yx.Status{Code: yx.StsTfInsert},
		yx.Status{Code: yx.StsAckOk})
	ctl, _ := newTestController(dev)
	cc := newTestCtl()
	cmd := postCommand(cc, &l1msgs.PlayerPause{})

	require.NoError(t, ctl.Control(cc))
	// first dispatched status is a device event, the pending command
	// resolves only with the following ack.
	require.NoError(t, ctl.poll(cc))
	require.Empty(t, cmd.replies)
	require.NoError(t, ctl.poll(cc))
	require.Equal(t, []fx.Message{l1msgs.NewCommandOK()}, cmd.replies)
}

func TestControllerRefresh(t *testing.T) {
	dev := newFakeDevice().
		reply(yx.CmdQueryStatus, yx.Status{Code: yx.StsStatus, Data: 0x0201}).
		reply(yx.CmdQueryVolume, yx.Status{Code: yx.StsVolume, Data: 18})
	ctl, rec := newTestController(dev)
	ctl.refreshAt = time.Time{}
	cc := newTestCtl()

	require.NoError(t, ctl.poll(cc))
	require.Equal(t, []yx.Command{yx.CmdQueryStatus}, dev.writes)
	require.NoError(t, ctl.poll(cc))
	require.True(t, ctl.status.Playing)

	cc.time = cc.time.Add(ctl.RefreshInterval + time.Second)
	require.NoError(t, ctl.poll(cc))
	require.Equal(t, []yx.Command{yx.CmdQueryStatus, yx.CmdQueryVolume}, dev.writes)
	require.NoError(t, ctl.poll(cc))
	require.Equal(t, uint32(18), ctl.status.Volume)

	require.NoError(t, ctl.notify(cc))
	require.Len(t, rec.events, 1)
	status := rec.events[0].(*l1msgs.PlayerStatus)
	require.Equal(t, uint32(18), status.Volume)
}

func TestControllerLeavesUnknownCommands(t *testing.T) {
	dev := newFakeDevice()
	ctl, _ := newTestController(dev)
	cc := newTestCtl()
	cmd := postCommand(cc, &l1msgs.CommandOK{})

	require.NoError(t, ctl.Control(cc))
	require.Empty(t, cmd.replies)
	require.Len(t, cc.msgs, 1)
}
