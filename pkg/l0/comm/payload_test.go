package comm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreSensorsRoundTrip(t *testing.T) {
	in := &CoreSensors{
		Timestamp: 0xfffe,
		LeftTick:  0x8000,
		RightTick: 42,
		Battery:   164,
		Flags:     0x03,
	}
	out, err := DecodeCoreSensors(in.Encode())
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestBaseControlRoundTrip(t *testing.T) {
	testCases := []struct {
		name          string
		speed, radius int16
	}{
		{"straight", 500, 0},
		{"pivot", -50, 1},
		{"extremes", 32767, -32768},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := &BaseControl{Speed: tc.speed, Radius: tc.radius}
			out, err := DecodeBaseControl(in.Encode())
			require.NoError(t, err)
			require.Equal(t, in, out)
		})
	}
}

func TestDecodeSkipsUnknownSubPayloads(t *testing.T) {
	payload := []byte{0x7f, 3, 1, 2, 3} // unknown sub-payload first
	payload = append(payload, (&CoreSensors{Timestamp: 7}).Encode()...)
	sensors, err := DecodeCoreSensors(payload)
	require.NoError(t, err)
	require.Equal(t, uint16(7), sensors.Timestamp)
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeCoreSensors([]byte{0x7f, 3, 1, 2, 3})
	require.Equal(t, ErrNoCoreSensors, err)

	_, err = DecodeBaseControl(nil)
	require.Equal(t, ErrNoBaseControl, err)

	_, err = DecodeCoreSensors([]byte{IDCoreSensors, 200, 1})
	require.Error(t, err)
	truncated, ok := err.(*TruncatedError)
	require.True(t, ok)
	require.Equal(t, IDCoreSensors, truncated.ID)
}
