package websocket

import "golang.org/x/net/websocket"

// ReadWriter adapts a websocket connection to the packet transport
// interface. Each binary frame is one packet.
type ReadWriter struct {
	conn *websocket.Conn
}

// New wraps an established connection.
func New(conn *websocket.Conn) *ReadWriter {
	return &ReadWriter{conn: conn}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var pkt []byte
	if err := websocket.Message.Receive(p.conn, &pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send(p.conn, pkt)
}

// Close closes the underlying connection.
func (p *ReadWriter) Close() error {
	return p.conn.Close()
}
