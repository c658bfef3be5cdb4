package comm

import "encoding/binary"

// Sub-payload identifiers. Feedback and command identifiers live in
// separate spaces; direction disambiguates.
const (
	// IDCoreSensors is the periodic feedback sub-payload
	// (firmware to controller).
	IDCoreSensors byte = 0x01
	// IDBaseControl is the drive command sub-payload
	// (controller to firmware).
	IDBaseControl byte = 0x01
)

const (
	coreSensorsLen = 8
	baseControlLen = 4
)

// CoreSensors is the periodic feedback sub-payload. Timestamp and
// tick counters are free-running 16-bit values that wrap
// independently; recovering signed deltas from them is the odometry
// integrator's job, not this codec's.
type CoreSensors struct {
	Timestamp uint16 // ms, wraps at 65536
	LeftTick  uint16 // encoder ticks, wraps
	RightTick uint16 // encoder ticks, wraps
	Battery   byte   // 0.1 V per LSB
	Flags     byte   // bumper/cliff/charger bits, reserved
}

// Encode encodes s as a complete frame payload.
func (s *CoreSensors) Encode() []byte {
	b := make([]byte, coreSensorsLen+2)
	b[0], b[1] = IDCoreSensors, coreSensorsLen
	binary.LittleEndian.PutUint16(b[2:], s.Timestamp)
	binary.LittleEndian.PutUint16(b[4:], s.LeftTick)
	binary.LittleEndian.PutUint16(b[6:], s.RightTick)
	b[8], b[9] = s.Battery, s.Flags
	return b
}

// BaseControl is the drive command sub-payload, in the firmware's
// native representation: translational speed and turning radius.
// Radius 0 means drive straight; radius 1 mm is the minimum-radius
// turn sentinel.
type BaseControl struct {
	Speed  int16 // mm/s
	Radius int16 // mm
}

// Encode encodes c as a complete frame payload.
func (c *BaseControl) Encode() []byte {
	b := make([]byte, baseControlLen+2)
	b[0], b[1] = IDBaseControl, baseControlLen
	binary.LittleEndian.PutUint16(b[2:], uint16(c.Speed))
	binary.LittleEndian.PutUint16(b[4:], uint16(c.Radius))
	return b
}

// DecodeCoreSensors extracts the core sensor sub-payload from a
// feedback frame payload, skipping unknown sub-payloads. It returns
// ErrNoCoreSensors if none is present.
func DecodeCoreSensors(payload []byte) (*CoreSensors, error) {
	var found *CoreSensors
	err := walkSubPayloads(payload, func(id byte, data []byte) {
		if id == IDCoreSensors && len(data) == coreSensorsLen && found == nil {
			found = &CoreSensors{
				Timestamp: binary.LittleEndian.Uint16(data[0:]),
				LeftTick:  binary.LittleEndian.Uint16(data[2:]),
				RightTick: binary.LittleEndian.Uint16(data[4:]),
				Battery:   data[6],
				Flags:     data[7],
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNoCoreSensors
	}
	return found, nil
}

// DecodeBaseControl extracts the drive command sub-payload from a
// command frame payload.
func DecodeBaseControl(payload []byte) (*BaseControl, error) {
	var found *BaseControl
	err := walkSubPayloads(payload, func(id byte, data []byte) {
		if id == IDBaseControl && len(data) == baseControlLen && found == nil {
			found = &BaseControl{
				Speed:  int16(binary.LittleEndian.Uint16(data[0:])),
				Radius: int16(binary.LittleEndian.Uint16(data[2:])),
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNoBaseControl
	}
	return found, nil
}

func walkSubPayloads(payload []byte, fn func(id byte, data []byte)) error {
	for len(payload) > 0 {
		if len(payload) < 2 {
			return &TruncatedError{ID: payload[0]}
		}
		id, l := payload[0], int(payload[1])
		if len(payload) < 2+l {
			return &TruncatedError{ID: id}
		}
		fn(id, payload[2:2+l])
		payload = payload[2+l:]
	}
	return nil
}
