package comm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	testCases := []struct {
		name   string
		frame  Frame
		expect []byte
	}{
		{"empty", Frame{}, []byte{0xaa, 0x55, 0, 0}},
		{"one byte", Frame{Payload: []byte{0x07}}, []byte{0xaa, 0x55, 1, 0x07, 0x06}},
		{"several bytes", Frame{Payload: []byte{1, 2, 3}}, []byte{0xaa, 0x55, 3, 1, 2, 3, 3}},
		{"header bytes in payload", Frame{Payload: []byte{0xaa, 0x55}}, []byte{0xaa, 0x55, 2, 0xaa, 0x55, 0xfd}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.frame.Bytes())
			var buf bytes.Buffer
			n, err := tc.frame.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, len(tc.expect), n)
		})
	}
}

func TestChecksum(t *testing.T) {
	require.Equal(t, byte(0), Checksum(nil))
	require.Equal(t, byte(3^1^2^3), Checksum([]byte{1, 2, 3}))
}
