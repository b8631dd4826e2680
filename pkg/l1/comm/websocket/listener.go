package websocket

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l1"
	"github.com/robotalks/mp3.go/pkg/l1/comm"
	"github.com/robotalks/mp3.go/pkg/l1/msgs"
)

// Listener implements l1.Registrar by serving a websocket endpoint
// directly from the controller process.
type Listener struct {
	Addr string
	Info l1.ControllerInfo

	ctx   context.Context
	pipes map[*comm.Pipe]struct{}
	lock  sync.Mutex
}

// NewListener creates a Listener on the specified address.
func NewListener(addr string, info l1.ControllerInfo) *Listener {
	return &Listener{
		Addr:  addr,
		Info:  info,
		pipes: make(map[*comm.Pipe]struct{}),
	}
}

// SendEvent implements Registrar.
func (l *Listener) SendEvent(ctx context.Context, msg fx.Message) error {
	l.lock.Lock()
	pipes := make([]*comm.Pipe, 0, len(l.pipes))
	for p := range l.pipes {
		pipes = append(pipes, p)
	}
	l.lock.Unlock()
	var errs fx.AggregatedError
	for _, p := range pipes {
		errs.Add(p.SendEventMsg(msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (l *Listener) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(l)
}

// Run implements Runnable.
func (l *Listener) Run(ctx context.Context) error {
	l.ctx = ctx
	lis, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	return fx.RunWithContextCloser(ctx, lis, func() error {
		err := http.Serve(lis, l)
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}
		return err
	})
}

// ServeHTTP serves websocket upgrades, and reports the controller
// over plain GET for discovery.
func (l *Listener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Upgrade") == "" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]l1.ControllerInfo{l.Info})
		return
	}
	websocket.Handler(l.serveConn).ServeHTTP(w, r)
}

func (l *Listener) serveConn(ws *websocket.Conn) {
	pipe := comm.NewPipe(New(ws))
	pipe.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
		loopCtl := fx.LoopCtlFrom(ctx)
		switch typed.Kind() {
		case msgs.TypeIDKindCommand:
			loopCtl.PostMessage(&l1.CommandMsg{Command: &wsCommand{seq: typed.Sequence, msg: msg, pipe: pipe}})
			loopCtl.TriggerNext()
		case msgs.TypeIDKindEvent:
			loopCtl.PostMessage(msg)
			loopCtl.TriggerNext()
		}
		return nil
	})
	l.lock.Lock()
	l.pipes[pipe] = struct{}{}
	l.lock.Unlock()
	defer func() {
		l.lock.Lock()
		delete(l.pipes, pipe)
		l.lock.Unlock()
	}()
	if err := pipe.Run(l.ctx); err != nil && err != context.Canceled {
		glog.V(2).Infof("websocket conn closed: %v", err)
	}
}

type wsCommand struct {
	seq  uint32
	msg  fx.Message
	pipe *comm.Pipe
}

func (c *wsCommand) Msg() fx.Message {
	return c.msg
}

func (c *wsCommand) Done(msg fx.Message) error {
	return c.pipe.SendCommandMsg(msg, c.seq)
}
