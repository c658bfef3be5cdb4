package base

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCommand(t *testing.T) {
	halfTrackMM := 1000.0 * DefaultGeometry.AxleTrack / 2.0

	testCases := []struct {
		name            string
		linear, angular float64
		expectSpeed     int16
		expectRadius    int16
	}{
		{"straight", 0.5, 0.0, 500, 0},
		{"straight reverse", -0.5, 0.0, -500, 0},
		{"straight tiny angular", 0.5, 5e-5, 500, 0},
		{"deadband stop", 0.05, 0.0, 0, 0},
		{"deadband with rotation", 0.05, 0.5, int16(halfTrackMM * 0.5), 1},
		{"pivot floored", 0.0, 0.2, 50, 1},
		{"pivot floored reverse", 0.0, -0.2, -50, 1},
		{"pivot above floor", 0.0, 0.5, int16(halfTrackMM * 0.5), 1},
		{"tight turn counts as pivot", 0.1, 120.0, int16(halfTrackMM * 120.0), 1},
		{"arc left", 0.5, 1.0, int16(500.0 + halfTrackMM), 500},
		{"arc right", 0.5, -1.0, int16(500.0 + halfTrackMM), -500},
		{"arc reverse", -0.5, 1.0, int16(-(500.0 + halfTrackMM)), -500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCommander(DefaultGeometry)
			c.ComputeCommand(tc.linear, tc.angular)
			speed, radius := c.Command()
			require.Equal(t, tc.expectSpeed, speed)
			require.Equal(t, tc.expectRadius, radius)
		})
	}
}

func TestComputeCommandPivotSpeedFloor(t *testing.T) {
	// |speed| below 50 mm/s saturates up to 50 preserving sign; the
	// expected tangential speed at 0.2 rad/s is 48.5 mm/s.
	c := NewCommander(DefaultGeometry)
	c.ComputeCommand(0.0, 0.2)
	speed, radius := c.Command()
	require.Equal(t, int16(1), radius)
	require.True(t, math.Abs(float64(speed)) >= 50.0)
}

func TestCommandSaturation(t *testing.T) {
	c := NewCommander(DefaultGeometry)
	c.SetCommand(1e9, -1e9)
	speed, radius := c.Command()
	require.Equal(t, int16(math.MaxInt16), speed)
	require.Equal(t, int16(math.MinInt16), radius)
}

func TestCommandNaNClampsToZero(t *testing.T) {
	c := NewCommander(DefaultGeometry)
	c.SetCommand(math.NaN(), math.NaN())
	speed, radius := c.Command()
	require.Equal(t, int16(0), speed)
	require.Equal(t, int16(0), radius)
}

func TestSetCommandDirect(t *testing.T) {
	c := NewCommander(DefaultGeometry)
	c.SetCommand(120, -340)
	speed, radius := c.Command()
	require.Equal(t, int16(120), speed)
	require.Equal(t, int16(-340), radius)
}

func TestPointVelocity(t *testing.T) {
	c := NewCommander(DefaultGeometry)

	linear, angular := c.PointVelocity()
	require.Zero(t, linear)
	require.Zero(t, angular)

	c.SetPointVelocity(0.3, -0.1)
	linear, angular = c.PointVelocity()
	require.Equal(t, 0.3, linear)
	require.Equal(t, -0.1, angular)

	// Reads are idempotent without an intervening set.
	linear2, angular2 := c.PointVelocity()
	require.Equal(t, linear, linear2)
	require.Equal(t, angular, angular2)

	// SetPointVelocity stores verbatim, it never touches the command.
	speed, radius := c.Command()
	require.Zero(t, speed)
	require.Zero(t, radius)
}
