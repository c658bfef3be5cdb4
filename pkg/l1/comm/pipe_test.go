package comm_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	basemsgs "github.com/robomotive/diffbase.go/pkg/base/msgs"
	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1/comm"
	"github.com/robomotive/diffbase.go/pkg/l1/comm/stream"
	"github.com/robomotive/diffbase.go/pkg/l1/msgs"
)

type duplex struct {
	io.Reader
	io.Writer
}

// newDuplexPair builds two connected ReadWriters.
func newDuplexPair() (a, b io.ReadWriter) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	return &duplex{Reader: ar, Writer: aw}, &duplex{Reader: br, Writer: bw}
}

func TestPipeRoundTrip(t *testing.T) {
	aEnd, bEnd := newDuplexPair()
	sender := comm.NewPipe(stream.New(aEnd))
	receiver := comm.NewPipe(stream.New(bEnd))

	received := make(chan fx.Message, 1)
	sequences := make(chan uint32, 1)
	receiver.Handler = msgs.HandleTypedMsgFunc(func(_ context.Context, msg fx.Message, typed *msgs.Typed) error {
		received <- msg
		sequences <- typed.Sequence
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go receiver.Run(ctx)

	require.NoError(t, sender.SendCommandMsg(&basemsgs.BaseDrive{Linear: 0.5, Angular: 1.0}, 42))

	select {
	case msg := <-received:
		drive, ok := msg.(*basemsgs.BaseDrive)
		require.True(t, ok)
		require.Equal(t, 0.5, drive.Linear)
		require.Equal(t, 1.0, drive.Angular)
		require.Equal(t, uint32(42), <-sequences)
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
}

func TestPipeEventRoundTrip(t *testing.T) {
	aEnd, bEnd := newDuplexPair()
	sender := comm.NewPipe(stream.New(aEnd))
	receiver := comm.NewPipe(stream.New(bEnd))

	received := make(chan fx.Message, 1)
	receiver.Handler = msgs.HandleTypedMsgFunc(func(_ context.Context, msg fx.Message, typed *msgs.Typed) error {
		require.True(t, typed.IsEvent())
		received <- msg
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go receiver.Run(ctx)

	require.NoError(t, sender.SendEventMsg(&basemsgs.BaseOdometry{DX: 0.01, DHeading: 0.002}))

	select {
	case msg := <-received:
		odom, ok := msg.(*basemsgs.BaseOdometry)
		require.True(t, ok)
		require.Equal(t, 0.01, odom.DX)
		require.Equal(t, 0.002, odom.DHeading)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestPipeRepliesUnknownType(t *testing.T) {
	aEnd, bEnd := newDuplexPair()
	sender := stream.New(aEnd)
	receiver := comm.NewPipe(stream.New(bEnd))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go receiver.Run(ctx)

	// a command with an unregistered type must be answered with
	// CommandErr instead of being dropped.
	typed := &msgs.Typed{TypeId: 0x7ffe0000, Sequence: 7}
	pkt, err := typed.Encode()
	require.NoError(t, err)
	require.NoError(t, sender.WritePacket(pkt))

	reply, err := sender.ReadPacket()
	require.NoError(t, err)
	replyTyped, err := msgs.DecodeTyped(reply)
	require.NoError(t, err)
	require.Equal(t, uint32(7), replyTyped.Sequence)
	msg, err := replyTyped.Decode()
	require.NoError(t, err)
	require.IsType(t, &msgs.CommandErr{}, msg)
}
