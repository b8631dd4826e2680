package yx

import (
	"context"
	"time"
)

// Transport is the byte-level capability the engine drives. The engine
// never opens or configures the underlying link.
type Transport interface {
	// Write sends bytes to the device.
	Write([]byte) (int, error)
	// Available reports the number of bytes ready to be read without
	// blocking.
	Available() int
	// ReadByte reads one available byte.
	ReadByte() (byte, error)
	// Now reports the transport's monotonic clock.
	Now() time.Time
}

// StatusListener is called when a status is dispatched.
type StatusListener interface {
	HandleStatus(Status)
}

// HandleStatusFunc is func type of StatusListener.
type HandleStatusFunc func(Status)

// HandleStatus implements StatusListener.
func (f HandleStatusFunc) HandleStatus(sts Status) {
	f(sts)
}

// DefaultTimeout is the default response timeout.
const DefaultTimeout = time.Second

// Delays applied by Begin after reset and device selection.
const (
	resetSettle  = 500 * time.Millisecond
	deviceSettle = 200 * time.Millisecond
)

// Engine drives an MP3 device over a Transport. It encodes commands
// into frames, assembles and validates responses, correlates the
// single outstanding request with its response or timeout, and
// dispatches device-originated events through the same path.
//
// All state is owned by the calling goroutine: Send and Poll must not
// be called concurrently.
type Engine struct {
	Transport Transport
	// Timeout is the response budget for a request.
	Timeout time.Duration
	// Synchronous makes Send poll for the response before returning.
	Synchronous bool
	// Listener, when set, is invoked synchronously from within
	// Send/Poll with every dispatched status.
	Listener StatusListener
	// NoChecksum disables checksum generation and validation.
	NoChecksum bool

	asm      Assembler
	status   Status
	sentAt   time.Time
	awaiting bool
}

// NewEngine creates an Engine with defaults: 1s timeout, synchronous.
func NewEngine(t Transport) *Engine {
	return &Engine{
		Transport:   t,
		Timeout:     DefaultTimeout,
		Synchronous: true,
	}
}

// Status gets the result of the last device operation.
func (e *Engine) Status() Status {
	return e.status
}

// Busy indicates a request is outstanding.
func (e *Engine) Busy() bool {
	return e.awaiting
}

// Begin initializes the device: reset, then select the TF card file
// store, with the settle delays the hardware needs.
func (e *Engine) Begin(ctx context.Context) error {
	if _, err := e.Reset(); err != nil {
		return err
	}
	if err := sleep(ctx, resetSettle); err != nil {
		return err
	}
	if _, err := e.Device(DevTF); err != nil {
		return err
	}
	return sleep(ctx, deviceSettle)
}

// Send encodes and sends a command frame. In asynchronous mode it
// returns true as soon as the frame is written; the response is
// observed by later Poll calls. In synchronous mode it polls until a
// status dispatches and returns false if that status is a timeout.
//
// Send fails with ErrBusy while a previous request is outstanding.
func (e *Engine) Send(cmd Command, data1, data2 byte) (bool, error) {
	if e.awaiting {
		return false, ErrBusy
	}
	pkt := Packet{Cmd: cmd, Data1: data1, Data2: data2, NoChecksum: e.NoChecksum}
	if _, err := pkt.WriteTo(e.Transport); err != nil {
		return false, err
	}
	e.sentAt = e.Transport.Now()
	e.awaiting = true
	if !e.Synchronous {
		return true, nil
	}
	for {
		done, err := e.Poll()
		if err != nil {
			return false, err
		}
		if done {
			return e.status.Code != StsTimeout, nil
		}
	}
}

// Poll drains available bytes and reports whether a status was
// dispatched. It must be called repeatedly in asynchronous mode; the
// response timeout is checked from here, not from a background timer.
func (e *Engine) Poll() (bool, error) {
	for e.Transport.Available() > 0 {
		b, err := e.Transport.ReadByte()
		if err != nil {
			// a broken transport will never produce the response.
			e.awaiting = false
			return false, err
		}
		fr := e.asm.Feed(b)
		if fr.State != FeedFrame {
			continue
		}
		sts, err := Decode(fr.Frame, !e.NoChecksum)
		switch err := err.(type) {
		case nil:
		case *VersionError:
			sts = Status{Code: StsVersion, Data: uint16(err.Received)}
		case *ChecksumError:
			sts = Status{Code: StsChecksum, Data: err.Received}
		default:
			// malformed frame, silently resynchronize.
			continue
		}
		e.dispatch(sts)
		return true, nil
	}
	if e.awaiting && e.Transport.Now().Sub(e.sentAt) > e.Timeout {
		e.dispatch(Status{Code: StsTimeout})
		return true, nil
	}
	return false, nil
}

func (e *Engine) dispatch(sts Status) {
	e.status = sts
	e.awaiting = false
	if l := e.Listener; l != nil {
		l.HandleStatus(sts)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
