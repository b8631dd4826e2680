package yx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type assemblerTestStep struct {
	in    []byte
	final FeedResult
}

type assemblerTestBuilder struct {
	steps []assemblerTestStep
}

func assemblerSteps() *assemblerTestBuilder {
	return &assemblerTestBuilder{}
}

func (b *assemblerTestBuilder) on(final FeedResult, in ...byte) *assemblerTestBuilder {
	b.steps = append(b.steps, assemblerTestStep{in: in, final: final})
	return b
}

func (b *assemblerTestBuilder) discarded(in ...byte) *assemblerTestBuilder {
	return b.on(FeedResult{State: FeedIdle}, in...)
}

func (b *assemblerTestBuilder) receiving(in ...byte) *assemblerTestBuilder {
	return b.on(FeedResult{State: FeedReceiving}, in...)
}

func (b *assemblerTestBuilder) frame(in ...byte) *assemblerTestBuilder {
	return b.on(FeedResult{State: FeedFrame, Frame: in}, in...)
}

func (b *assemblerTestBuilder) build() []assemblerTestStep {
	return b.steps
}

func validFrame(code StatusCode, data uint16) []byte {
	pkt := Packet{Cmd: Command(code), Data1: byte(data >> 8), Data2: byte(data)}
	return pkt.Bytes()
}

func corruptTerminator(frame []byte) []byte {
	bad := append([]byte{}, frame...)
	bad[len(bad)-1] = 0x00
	return bad
}

func TestAssembler(t *testing.T) {
	frame := validFrame(StsAckOk, 0)

	testCases := []struct {
		name  string
		steps []assemblerTestStep
	}{
		{
			name: "clean frame",
			steps: assemblerSteps().
				frame(frame...).
				build(),
		},
		{
			name: "resync on leading garbage",
			steps: assemblerSteps().
				discarded(0x00, 0x13, 0xef, 0xff).
				frame(frame...).
				build(),
		},
		{
			name: "eom as payload byte",
			steps: assemblerSteps().
				frame(validFrame(StsFileEnd, uint16(EOM))...).
				build(),
		},
		{
			name: "corrupted terminator still completes at length",
			steps: assemblerSteps().
				// the decoder rejects the frame, the assembler only
				// cuts it at the fixed length.
				frame(corruptTerminator(frame)...).
				frame(frame...).
				build(),
		},
		{
			name: "misaligned bytes complete as garbage then resync",
			steps: assemblerSteps().
				receiving(frame[:6]...).
				// the next frame's first bytes land inside the
				// truncated one and complete it at the fixed length.
				on(FeedResult{
					State: FeedFrame,
					Frame: append(append([]byte{}, frame[:6]...), frame[:4]...),
				}, frame[:4]...).
				discarded(frame[4:]...).
				frame(frame...).
				build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var asm Assembler
			for n, step := range tc.steps {
				var fr FeedResult
				for _, b := range step.in {
					fr = asm.Feed(b)
				}
				require.Equalf(t, step.final, fr, "step[%d] mismatch", n)
			}
		})
	}
}

func TestAssemblerReset(t *testing.T) {
	var asm Assembler
	asm.Feed(SOM)
	asm.Feed(Version)
	asm.Reset()
	require.Equal(t, FeedIdle, asm.Feed(0x01).State)
}
