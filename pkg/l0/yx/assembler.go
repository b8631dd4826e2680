package yx

// BufferSize is the capacity of the receive buffer.
const BufferSize = 30

// FeedState indicates the state of frame assembly.
type FeedState int

const (
	// FeedIdle means the byte was discarded waiting for a start marker.
	FeedIdle FeedState = iota
	// FeedReceiving means a frame is partially assembled.
	FeedReceiving
	// FeedFrame means a complete frame is ready.
	FeedFrame
)

// FeedResult is the result after consuming one byte.
type FeedResult struct {
	State FeedState
	// Frame holds the complete frame when State is FeedFrame. It
	// aliases the assembler buffer and is only valid until the next
	// Feed call.
	Frame []byte
}

// Assembler accumulates inbound bytes into frames. Bytes before the
// start marker are discarded, so assembly resynchronizes on the next
// start marker after any corruption. The buffer never grows: on
// overflow it is dropped and assembly restarts at the next start
// marker.
type Assembler struct {
	buf [BufferSize]byte
	n   int
}

// Reset discards any partially assembled frame.
func (a *Assembler) Reset() {
	a.n = 0
}

// Feed consumes one byte.
func (a *Assembler) Feed(b byte) (fr FeedResult) {
	if a.n == 0 && b != SOM {
		return
	}
	if a.n >= BufferSize {
		// overflow: drop and resync.
		a.n = 0
		if b != SOM {
			return
		}
	}
	a.buf[a.n] = b
	a.n++
	// A frame completes at the fixed length. An EOM-valued byte before
	// the final position is payload, not a terminator; a non-EOM byte
	// in the final position still completes the frame and is left for
	// Decode to reject.
	if a.n == FrameLen {
		fr.State, fr.Frame = FeedFrame, a.buf[:a.n]
		a.n = 0
		return
	}
	fr.State = FeedReceiving
	return
}
