package comm

// Parser recovers frames from the raw byte stream, one byte at a
// time, resynchronizing on the two-byte header after corruption.
type Parser struct {
	state   parseState
	payload []byte
	recvLen int
	dropped int
}

type parseState int

const (
	stateHeaderA  parseState = iota // scanning for 0xAA
	stateHeaderB                    // 0xAA seen, expecting 0x55
	stateLen                        // expecting payload length
	statePayload                    // receiving payload bytes
	stateChecksum                   // expecting checksum
)

// Receiving indicates the parser is in the middle of a frame.
func (p *Parser) Receiving() bool {
	return p.state != stateHeaderA
}

// Dropped returns the number of frames discarded for checksum
// mismatch since the parser was created.
func (p *Parser) Dropped() int {
	return p.dropped
}

// Reset discards any partially received frame.
func (p *Parser) Reset() {
	p.state, p.payload = stateHeaderA, nil
}

// Parse consumes one byte and returns a complete frame when the byte
// finishes one, nil otherwise.
func (p *Parser) Parse(b byte) *Frame {
	switch p.state {
	case stateHeaderA:
		if b == headerA {
			p.state = stateHeaderB
		}
	case stateHeaderB:
		switch b {
		case headerB:
			p.state = stateLen
		case headerA:
			// stay: 0xAA 0xAA 0x55 still syncs
		default:
			p.state = stateHeaderA
		}
	case stateLen:
		if b == 0 {
			p.payload = nil
			p.state = stateChecksum
			return nil
		}
		p.payload, p.recvLen = make([]byte, b), 0
		p.state = statePayload
	case statePayload:
		p.payload[p.recvLen] = b
		p.recvLen++
		if p.recvLen >= len(p.payload) {
			p.state = stateChecksum
		}
	case stateChecksum:
		payload := p.payload
		p.payload, p.state = nil, stateHeaderA
		if b != Checksum(payload) {
			p.dropped++
			return nil
		}
		return &Frame{Payload: payload}
	}
	return nil
}
