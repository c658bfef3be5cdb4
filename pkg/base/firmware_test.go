package base

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	l0 "github.com/robomotive/diffbase.go/pkg/l0/comm"
)

func firmwareReadFrame(t *testing.T, fw *Firmware) *l0.CoreSensors {
	var parser l0.Parser
	buf := make([]byte, 64)
	for {
		n, err := fw.Read(buf)
		require.NoError(t, err)
		for _, b := range buf[:n] {
			if frame := parser.Parse(b); frame != nil {
				sensors, err := l0.DecodeCoreSensors(frame.Payload)
				require.NoError(t, err)
				return sensors
			}
		}
	}
}

func firmwareSend(t *testing.T, fw *Firmware, speed, radius int16) {
	cmd := &l0.BaseControl{Speed: speed, Radius: radius}
	frame := &l0.Frame{Payload: cmd.Encode()}
	_, err := fw.Write(frame.Bytes())
	require.NoError(t, err)
}

func TestFirmwareStraight(t *testing.T) {
	fw := NewFirmware(DefaultGeometry)
	defer fw.Close()

	firmwareSend(t, fw, 500, 0)
	fw.Step(time.Second)
	sensors := firmwareReadFrame(t, fw)

	require.Equal(t, uint16(1000), sensors.Timestamp)
	// 0.5 m/s over 1s through wheel radius and tick scale.
	expect := uint16(0.5 / (DefaultGeometry.WheelRadius * DefaultGeometry.TickToRad))
	require.Equal(t, expect, sensors.LeftTick)
	require.Equal(t, expect, sensors.RightTick)
}

func TestFirmwarePivot(t *testing.T) {
	fw := NewFirmware(DefaultGeometry)
	defer fw.Close()

	firmwareSend(t, fw, 200, 1)
	fw.Step(time.Second)
	sensors := firmwareReadFrame(t, fw)

	// in-place turn moves the wheels in opposite directions by the
	// same magnitude.
	left := int16(sensors.LeftTick)
	right := int16(sensors.RightTick)
	require.Equal(t, -left, right)
	require.True(t, right > 0)
}

func TestFirmwareIdle(t *testing.T) {
	fw := NewFirmware(DefaultGeometry)
	defer fw.Close()

	fw.Step(100 * time.Millisecond)
	sensors := firmwareReadFrame(t, fw)
	require.Equal(t, uint16(100), sensors.Timestamp)
	require.Equal(t, uint16(0), sensors.LeftTick)
	require.Equal(t, uint16(0), sensors.RightTick)
}

func TestFirmwareTickWraparound(t *testing.T) {
	fw := NewFirmware(DefaultGeometry)
	defer fw.Close()

	firmwareSend(t, fw, -500, 0)
	fw.Step(time.Second)
	sensors := firmwareReadFrame(t, fw)

	// reverse motion wraps the unsigned counters below zero; the
	// odometer recovers the signed delta.
	odom := NewOdometer(DefaultGeometry)
	odom.Update(0, 0, 0)
	delta, _ := odom.Update(sensors.Timestamp, sensors.LeftTick, sensors.RightTick)
	require.InDelta(t, -0.5, delta.X, 0.001)
}
