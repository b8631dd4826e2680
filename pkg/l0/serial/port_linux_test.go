package serial

import (
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/mp3.go/pkg/l0/yx"
)

func TestPortReadWrite(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	port, err := Open(Config{Device: tty.Name(), BaudRate: 9600})
	require.NoError(t, err)
	defer port.Close()

	// peer -> port
	frame := (&yx.Packet{Cmd: yx.CmdPlay}).Bytes()
	_, err = ptmx.Write(frame)
	require.NoError(t, err)

	got := make([]byte, 0, len(frame))
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < len(frame) {
		if port.Available() == 0 {
			require.True(t, time.Now().Before(deadline), "timeout waiting for bytes")
			time.Sleep(time.Millisecond)
			continue
		}
		b, err := port.ReadByte()
		require.NoError(t, err)
		got = append(got, b)
	}
	require.Equal(t, frame, got)

	// port -> peer
	n, err := port.Write(frame)
	require.NoError(t, err)
	require.Equal(t, len(frame), n)
	buf := make([]byte, len(frame))
	ptmx.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = ptmx.Read(buf)
	require.NoError(t, err)
}

func TestPortWriteResumesShortWrites(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	port, err := Open(Config{Device: tty.Name(), BaudRate: 9600})
	require.NoError(t, err)
	defer port.Close()

	// well beyond the pty buffer, so the kernel accepts it in pieces
	// while the peer drains.
	payload := make([]byte, 64*1024)
	for i := range payload {
		payload[i] = byte(i)
	}

	received := make(chan []byte, 1)
	go func() {
		got := make([]byte, 0, len(payload))
		buf := make([]byte, 4096)
		for len(got) < len(payload) {
			n, err := ptmx.Read(buf)
			if err != nil {
				break
			}
			got = append(got, buf[:n]...)
		}
		received <- got
	}()

	n, err := port.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, <-received)
}

func TestPortAsTransport(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	port, err := Open(Config{Device: tty.Name(), BaudRate: 9600})
	require.NoError(t, err)
	defer port.Close()

	e := yx.NewEngine(port)
	e.Synchronous = false
	ok, err := e.PlayTrack(3)
	require.NoError(t, err)
	require.True(t, ok)

	// peer acknowledges, engine observes it on poll.
	reply := &yx.Packet{Cmd: yx.Command(yx.StsAckOk)}
	_, err = ptmx.Write(reply.Bytes())
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for {
		done, err := e.Poll()
		require.NoError(t, err)
		if done {
			break
		}
		require.True(t, time.Now().Before(deadline), "timeout waiting for status")
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, yx.Status{Code: yx.StsAckOk}, e.Status())
}
