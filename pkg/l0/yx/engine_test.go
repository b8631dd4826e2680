package yx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errReadFailed = errors.New("read failed")

// testTransport is a scripted Transport with a fake clock. Each Now
// call advances the clock by step so synchronous waits terminate.
type testTransport struct {
	written []byte
	pending []byte
	readErr error
	now     time.Time
	step    time.Duration
}

func newTestTransport() *testTransport {
	return &testTransport{now: time.Unix(0, 0), step: time.Millisecond}
}

func (t *testTransport) Write(p []byte) (int, error) {
	t.written = append(t.written, p...)
	return len(p), nil
}

func (t *testTransport) Available() int {
	return len(t.pending)
}

func (t *testTransport) ReadByte() (byte, error) {
	if t.readErr != nil {
		return 0, t.readErr
	}
	b := t.pending[0]
	t.pending = t.pending[1:]
	return b, nil
}

func (t *testTransport) Now() time.Time {
	t.now = t.now.Add(t.step)
	return t.now
}

func (t *testTransport) inject(frames ...[]byte) {
	for _, f := range frames {
		t.pending = append(t.pending, f...)
	}
}

type statusRecorder struct {
	statuses []Status
}

func (r *statusRecorder) HandleStatus(sts Status) {
	r.statuses = append(r.statuses, sts)
}

func TestSendSynchronous(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	rec := &statusRecorder{}
	e.Listener = rec

	tr.inject(validFrame(StsAckOk, 0))
	ok, err := e.Volume(20)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Status{Code: StsAckOk}, e.Status())
	require.False(t, e.Busy())
	require.Equal(t, []Status{{Code: StsAckOk}}, rec.statuses)
	require.Equal(t, (&Packet{Cmd: CmdSetVolume, Data2: 20}).Bytes(), tr.written)
}

func TestSendTimeout(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	rec := &statusRecorder{}
	e.Listener = rec
	e.Timeout = 100 * time.Millisecond

	sent := tr.now
	ok, err := e.Play()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Status{Code: StsTimeout}, e.Status())
	require.False(t, e.Busy())
	require.Equal(t, []Status{{Code: StsTimeout}}, rec.statuses)
	require.True(t, tr.now.Sub(sent) > e.Timeout)
}

func TestSendAsynchronous(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false

	ok, err := e.Stop()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, e.Busy())

	// response correctness is unknown until polled.
	tr.inject(validFrame(StsAckOk, 0))
	done, err := e.Poll()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, Status{Code: StsAckOk}, e.Status())
	require.False(t, e.Busy())
}

func TestSendBusyRejected(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false

	_, err := e.Play()
	require.NoError(t, err)
	_, err = e.Pause()
	require.Equal(t, ErrBusy, err)
}

func TestPollUnsolicited(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false
	rec := &statusRecorder{}
	e.Listener = rec

	done, err := e.Poll()
	require.NoError(t, err)
	require.False(t, done)

	tr.inject(validFrame(StsFileEnd, 7))
	done, err = e.Poll()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, []Status{{Code: StsFileEnd, Data: 7}}, rec.statuses)
	require.False(t, e.Busy())
}

func TestPollResync(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false
	rec := &statusRecorder{}
	e.Listener = rec

	// garbage without a start marker, then a valid frame: exactly one
	// status dispatches.
	tr.pending = append(tr.pending, 0x00, 0x10, 0xff, 0xef)
	tr.inject(validFrame(StsTfInsert, 0))
	done, err := e.Poll()
	require.NoError(t, err)
	require.True(t, done)
	done, err = e.Poll()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []Status{{Code: StsTfInsert}}, rec.statuses)
}

func TestPollCorruptedTerminator(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false
	rec := &statusRecorder{}
	e.Listener = rec

	// a response with its end marker corrupted must not swallow the
	// frame that follows it.
	tr.inject(corruptTerminator(validFrame(StsAckOk, 0)))
	tr.inject(validFrame(StsFileEnd, 3))
	done, err := e.Poll()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, []Status{{Code: StsFileEnd, Data: 3}}, rec.statuses)
}

func TestPollReadErrorClearsBusy(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false

	ok, err := e.Play()
	require.NoError(t, err)
	require.True(t, ok)

	tr.pending = []byte{SOM}
	tr.readErr = errReadFailed
	_, err = e.Poll()
	require.Equal(t, errReadFailed, err)
	require.False(t, e.Busy())

	// the engine accepts a new request after the failure.
	tr.readErr = nil
	tr.pending = nil
	_, err = e.Stop()
	require.NoError(t, err)
}

func TestPollDecodeFailures(t *testing.T) {
	badVer := validFrame(StsAckOk, 0)
	badVer[1] = 0xf0
	badCks := validFrame(StsAckOk, 0)
	badCks[7] ^= 0xff
	recvCks := uint16(badCks[7])<<8 | uint16(badCks[8])

	testCases := []struct {
		name   string
		frame  []byte
		expect Status
	}{
		{"bad version", badVer, Status{Code: StsVersion, Data: 0xf0}},
		{"bad checksum", badCks, Status{Code: StsChecksum, Data: recvCks}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTransport()
			e := NewEngine(tr)
			e.Synchronous = false
			tr.inject(tc.frame)
			done, err := e.Poll()
			require.NoError(t, err)
			require.True(t, done)
			require.Equal(t, tc.expect, e.Status())
		})
	}
}

func TestCommandShaping(t *testing.T) {
	testCases := []struct {
		name string
		send func(*Engine) (bool, error)
		pkt  Packet
	}{
		{"volume clamped", func(e *Engine) (bool, error) { return e.Volume(45) }, Packet{Cmd: CmdSetVolume, Data2: MaxVolume}},
		{"equalizer out of range", func(e *Engine) (bool, error) { return e.Equalizer(9) }, Packet{Cmd: CmdSetEqualizer, Data2: EqNormal}},
		{"shuffle on", func(e *Engine) (bool, error) { return e.Shuffle(true) }, Packet{Cmd: CmdShuffle, Data2: OptOn}},
		{"repeat off", func(e *Engine) (bool, error) { return e.Repeat(false) }, Packet{Cmd: CmdSetRepeat, Data2: OptOff}},
		{"mute switches dac off", func(e *Engine) (bool, error) { return e.VolumeMute(true) }, Packet{Cmd: CmdSetDAC, Data2: OptOff}},
		{"unmute switches dac on", func(e *Engine) (bool, error) { return e.VolumeMute(false) }, Packet{Cmd: CmdSetDAC, Data2: OptOn}},
		{"play specific", func(e *Engine) (bool, error) { return e.PlaySpecific(3, 12) }, Packet{Cmd: CmdPlayFolderFile, Data1: 3, Data2: 12}},
		{"query folder files", func(e *Engine) (bool, error) { return e.QueryFolderFiles(4) }, Packet{Cmd: CmdQueryFldrFiles, Data2: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTransport()
			e := NewEngine(tr)
			e.Synchronous = false
			ok, err := tc.send(e)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, tc.pkt.Bytes(), tr.written)
		})
	}
}

func TestNoChecksum(t *testing.T) {
	tr := newTestTransport()
	e := NewEngine(tr)
	e.Synchronous = false
	e.NoChecksum = true

	ok, err := e.Play()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, (&Packet{Cmd: CmdPlay, NoChecksum: true}).Bytes(), tr.written)

	// inbound checksum bytes are ignored.
	reply := validFrame(StsAckOk, 0)
	reply[7], reply[8] = 0, 0
	tr.inject(reply)
	done, err := e.Poll()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, Status{Code: StsAckOk}, e.Status())
}
