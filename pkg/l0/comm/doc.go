// Package comm provides L0 protocol support.
package comm

// L0 protocol is communicated between the base firmware and the L1
// controller over a byte stream (e.g. serial port). The firmware
// periodically emits feedback frames and accepts command frames on
// the same link. Each frame is:
//
//	0xAA 0x55 | LEN | PAYLOAD ... | CHECKSUM
//
// LEN is the payload length in bytes and CHECKSUM is the XOR of LEN
// and every payload byte. The payload is a sequence of sub-payloads,
// each encoded as ID LEN DATA...; multi-byte fields are
// little-endian. Unknown sub-payloads are skipped so firmware may add
// new feedback without breaking older controllers. A frame failing
// its checksum is dropped and the parser resynchronizes on the next
// header.
//
// Producer: base firmware
// Consumer: L1 controller
