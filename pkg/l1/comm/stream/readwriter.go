package stream

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxPacketSize rejects absurd lengths from a corrupt or
// misaligned stream before allocating for them.
const maxPacketSize = 1 << 20

// ReadWriter frames packets over a byte stream. Each packet is
// preceded by its length as a 4-byte little-endian header.
type ReadWriter struct {
	rw io.ReadWriter
}

// New creates a ReadWriter over rw.
func New(rw io.ReadWriter) *ReadWriter {
	return &ReadWriter{rw: rw}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(p.rw, hdr[:]); err != nil {
		return nil, err
	}
	size := binary.LittleEndian.Uint32(hdr[:])
	if size > maxPacketSize {
		return nil, fmt.Errorf("packet too large: %d", size)
	}
	pkt := make([]byte, size)
	if _, err := io.ReadFull(p.rw, pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(pkt)))
	if _, err := p.rw.Write(hdr[:]); err != nil {
		return err
	}
	_, err := p.rw.Write(pkt)
	return err
}

// Close closes the underlying stream if it supports closing.
func (p *ReadWriter) Close() error {
	if closer, ok := p.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
