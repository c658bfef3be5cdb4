package comm

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type duplex struct {
	io.Reader
	io.Writer
}

func TestStreamDispatchesFeedback(t *testing.T) {
	fromFW, fwWrite := io.Pipe()

	s := NewStream(&duplex{Reader: fromFW, Writer: io.Discard})
	received := make(chan *CoreSensors, 4)
	s.Handler = HandleFeedbackFunc(func(ctx context.Context, cs *CoreSensors) {
		received <- cs
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	frame := Frame{Payload: (&CoreSensors{Timestamp: 10, LeftTick: 1, RightTick: 2}).Encode()}
	// split the write to exercise reassembly
	raw := frame.Bytes()
	go func() {
		fwWrite.Write(raw[:3])
		fwWrite.Write(raw[3:])
	}()

	select {
	case cs := <-received:
		require.Equal(t, uint16(10), cs.Timestamp)
		require.Equal(t, uint16(1), cs.LeftTick)
		require.Equal(t, uint16(2), cs.RightTick)
	case <-time.After(time.Second):
		t.Fatal("no feedback dispatched")
	}

	cancel()
	fwWrite.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestStreamSend(t *testing.T) {
	fromCtl, ctlWrite := io.Pipe()
	s := NewStream(&duplex{Reader: nil, Writer: ctlWrite})

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- s.Send(&BaseControl{Speed: 500, Radius: 0})
		ctlWrite.Close()
	}()

	raw, err := io.ReadAll(fromCtl)
	require.NoError(t, err)
	require.NoError(t, <-sendErr)

	var p Parser
	frames := parseAll(&p, raw)
	require.Len(t, frames, 1)
	cmd, err := DecodeBaseControl(frames[0].Payload)
	require.NoError(t, err)
	require.Equal(t, int16(500), cmd.Speed)
	require.Equal(t, int16(0), cmd.Radius)
}

func TestStreamSendTooLarge(t *testing.T) {
	s := NewStream(&duplex{})
	err := s.SendFrame(&Frame{Payload: make([]byte, MaxPayloadLen+1)})
	require.Equal(t, ErrPayloadTooLarge, err)
}
