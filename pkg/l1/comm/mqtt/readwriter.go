package mqtt

import (
	"context"
	"io"

	"github.com/robomotive/diffbase.go/pkg/l1"
)

// ReadWriter moves packets over a pair of MQTT topics. Each
// controller owns two topics under its name: "cmd" flows toward the
// robot, "msg" flows away from it.
type ReadWriter struct {
	Queue *Queue

	subTopic string
	pubTopic string
	packetCh chan []byte
}

// ControllerSide wires the topics the way the robot-side controller
// expects: commands in, messages out.
func ControllerSide(q *Queue, ref l1.ControllerRef) *ReadWriter {
	return newReadWriter(q, ref.Name()+"/cmd", ref.Name()+"/msg")
}

// ConnectorSide is the mirror image, for the upstream end.
func ConnectorSide(q *Queue, ref l1.ControllerRef) *ReadWriter {
	return newReadWriter(q, ref.Name()+"/msg", ref.Name()+"/cmd")
}

func newReadWriter(q *Queue, subTopic, pubTopic string) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		subTopic: subTopic,
		pubTopic: pubTopic,
		packetCh: make(chan []byte, 1),
	}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	pkt, ok := <-p.packetCh
	if !ok {
		return nil, io.EOF
	}
	return pkt, nil
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.pubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable. It keeps the inbound topic subscribed
// until the context ends, then unblocks any pending ReadPacket.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.subTopic, func(_ string, payload []byte) {
		p.packetCh <- payload
	})
	defer sub.Close()
	defer close(p.packetCh)
	<-ctx.Done()
	return ctx.Err()
}
