package comm

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l1/comm/stream"
	"github.com/robotalks/mp3.go/pkg/l1/msgs"
)

type typedMsg struct {
	msg   fx.Message
	typed *msgs.Typed
}

func recorder(ch chan typedMsg) msgs.TypedMsgHandler {
	return msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		ch <- typedMsg{msg: msg, typed: typed}
		return nil
	})
}

func waitMsg(t *testing.T, ch chan typedMsg) typedMsg {
	select {
	case m := <-ch:
		return m
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return typedMsg{}
	}
}

func pipePair() (client, server *Pipe) {
	cliConn, srvConn := net.Pipe()
	client = NewPipe(stream.New(cliConn))
	server = NewPipe(stream.New(srvConn))
	return
}

func TestPipeCommandRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, server := pipePair()

	server.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		play, ok := msg.(*msgs.PlayerPlay)
		if !ok {
			t.Errorf("unexpected message %T", msg)
			return nil
		}
		if play.Track != 3 {
			t.Errorf("unexpected track %d", play.Track)
		}
		return server.SendCommandMsg(msgs.NewCommandOK(), typed.Sequence)
	})
	replies := make(chan typedMsg, 1)
	client.Handler = recorder(replies)

	go server.Run(ctx)
	go client.Run(ctx)

	require.NoError(t, client.SendCommandMsg(&msgs.PlayerPlay{Track: 3}, 7))
	reply := waitMsg(t, replies)
	require.IsType(t, &msgs.CommandOK{}, reply.msg)
	require.Equal(t, uint32(7), reply.typed.Sequence)
	require.True(t, reply.typed.IsCommand())
}

func TestPipeEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, server := pipePair()

	events := make(chan typedMsg, 1)
	client.Handler = recorder(events)

	go server.Run(ctx)
	go client.Run(ctx)

	require.NoError(t, server.SendEventMsg(&msgs.PlayerEvent{Code: 0x3d, Data: 7}))
	ev := waitMsg(t, events)
	require.True(t, ev.typed.IsEvent())
	require.Equal(t, &msgs.PlayerEvent{Code: 0x3d, Data: 7}, ev.msg)
}

func TestPipeUnknownCommandReplied(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, server := pipePair()

	replies := make(chan typedMsg, 1)
	client.Handler = recorder(replies)

	go server.Run(ctx)
	go client.Run(ctx)

	// a command the peer cannot decode gets a CommandErr back.
	unknown := &msgs.Typed{TypeId: msgs.GroupCustom | 0x0001, Sequence: 9}
	require.NoError(t, client.SendTyped(unknown))
	reply := waitMsg(t, replies)
	require.Equal(t, uint32(9), reply.typed.Sequence)
	cmdErr, ok := reply.msg.(*msgs.CommandErr)
	require.True(t, ok)
	require.Contains(t, cmdErr.Message, "unknown type")
}
