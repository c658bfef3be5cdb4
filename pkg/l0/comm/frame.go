package comm

import "io"

const (
	headerA byte = 0xaa
	headerB byte = 0x55
)

// MaxPayloadLen is the largest payload the one-byte length field can
// describe.
const MaxPayloadLen = 0xff

// Frame is one unit of exchange with the base firmware.
type Frame struct {
	Payload []byte
}

// Checksum computes the XOR checksum over the length byte and the
// payload.
func Checksum(payload []byte) byte {
	cs := byte(len(payload))
	for _, b := range payload {
		cs ^= b
	}
	return cs
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, len(f.Payload)+4)
	b[0], b[1], b[2] = headerA, headerB, byte(len(f.Payload))
	copy(b[3:], f.Payload)
	b[len(b)-1] = Checksum(f.Payload)
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (n int, err error) {
	return w.Write(f.Bytes())
}
