package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOdometerFirstSampleBaseline(t *testing.T) {
	testCases := []struct {
		name                string
		timestamp           uint16
		leftTick, rightTick uint16
	}{
		{"zeros", 100, 0, 0},
		{"arbitrary", 100, 12345, 54321},
		{"near wrap", 100, 65535, 65534},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOdometer(DefaultGeometry)
			delta, _ := o.Update(tc.timestamp, tc.leftTick, tc.rightTick)
			require.Zero(t, delta.X)
			require.Zero(t, delta.Y)
			require.Zero(t, delta.Heading)
			angleL, rateL, angleR, rateR := o.WheelJointState()
			require.Zero(t, angleL)
			require.Zero(t, angleR)
			require.Zero(t, rateL)
			require.Zero(t, rateR)
		})
	}
}

func TestOdometerTickWraparound(t *testing.T) {
	testCases := []struct {
		name          string
		first, second uint16
		expectTicks   float64
	}{
		{"forward no wrap", 100, 236, 136},
		{"backward no wrap", 236, 100, -136},
		{"forward across wrap", 65500, 100, 136},
		{"backward across wrap", 100, 65500, -136},
		{"half range forward", 0, 32767, 32767},
		{"half range backward", 0, 32768, -32768},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOdometer(DefaultGeometry)
			o.Update(10, tc.first, tc.first)
			o.Update(20, tc.second, tc.second)
			angleL, _, angleR, _ := o.WheelJointState()
			expect := DefaultGeometry.TickToRad * tc.expectTicks
			require.InDelta(t, expect, angleL, 1e-12)
			require.InDelta(t, expect, angleR, 1e-12)
		})
	}
}

func TestOdometerWrapMatchesLinearSequence(t *testing.T) {
	// Crossing the 16-bit boundary must integrate exactly like an
	// equivalent sequence with the same true signed differences.
	wrapped := NewOdometer(DefaultGeometry)
	wrapped.Update(10, 65400, 65400)
	wrapped.Update(20, 64, 64) // +200 across the wrap
	wrapped.Update(30, 264, 264)

	linear := NewOdometer(DefaultGeometry)
	linear.Update(10, 1000, 1000)
	linear.Update(20, 1200, 1200)
	linear.Update(30, 1400, 1400)

	wl, wrl, _, _ := wrapped.WheelJointState()
	ll, lrl, _, _ := linear.WheelJointState()
	require.InDelta(t, ll, wl, 1e-12)
	require.InDelta(t, lrl, wrl, 1e-12)
}

func TestOdometerTimestampWraparound(t *testing.T) {
	o := NewOdometer(DefaultGeometry)
	o.Update(65530, 0, 0)
	// 16 ms elapse across the timestamp wrap.
	delta, rate := o.Update(10, 100, 100)
	expectAngle := DefaultGeometry.TickToRad * 100
	_, rateL, _, rateR := o.WheelJointState()
	require.InDelta(t, expectAngle/0.016, rateL, 1e-9)
	require.InDelta(t, expectAngle/0.016, rateR, 1e-9)
	require.InDelta(t, delta.X/0.016, rate.X, 1e-9)
}

func TestOdometerHoldsVelocityOnStalledTimestamp(t *testing.T) {
	o := NewOdometer(DefaultGeometry)
	o.Update(100, 0, 0)
	o.Update(110, 50, 50) // 10 ms, establishes a velocity
	_, before, _, _ := o.WheelJointState()
	require.NotZero(t, before)

	// Same timestamp again: the wheels moved but no time elapsed.
	// Velocity is deliberately held, not zeroed or recomputed.
	delta, rate := o.Update(110, 80, 80)
	_, after, _, _ := o.WheelJointState()
	require.Equal(t, before, after)

	// Angles still accumulate and the rate uses the stale interval.
	angleL, _, _, _ := o.WheelJointState()
	require.InDelta(t, DefaultGeometry.TickToRad*80, angleL, 1e-12)
	require.InDelta(t, delta.X/0.010, rate.X, 1e-9)
}

func TestOdometerReset(t *testing.T) {
	o := NewOdometer(DefaultGeometry)
	o.Update(10, 100, 100)
	o.Update(20, 300, 300)
	o.Reset()

	angleL, rateL, angleR, rateR := o.WheelJointState()
	require.Zero(t, angleL)
	require.Zero(t, angleR)
	require.Zero(t, rateL)
	require.Zero(t, rateR)

	// Baselines survive the reset: the next sample integrates
	// relative to the previous raw ticks, not from scratch.
	o.Update(30, 400, 400)
	angleL, _, angleR, _ = o.WheelJointState()
	require.InDelta(t, DefaultGeometry.TickToRad*100, angleL, 1e-12)
	require.InDelta(t, DefaultGeometry.TickToRad*100, angleR, 1e-12)
}

func TestOdometerPoseDelta(t *testing.T) {
	o := NewOdometer(DefaultGeometry)
	o.Update(10, 0, 0)

	// Equal wheel motion: straight-line delta, no heading change.
	delta, _ := o.Update(20, 100, 100)
	wheelDelta := DefaultGeometry.TickToRad * 100
	require.InDelta(t, DefaultGeometry.WheelRadius*wheelDelta, delta.X, 1e-12)
	require.Zero(t, delta.Y)
	require.Zero(t, delta.Heading)

	// Opposite wheel motion: pure rotation in place.
	delta, _ = o.Update(30, 0, 200)
	require.InDelta(t, 0, delta.X, 1e-12)
	expectHeading := DefaultGeometry.WheelRadius * (wheelDelta - (-wheelDelta)) / DefaultGeometry.AxleTrack
	require.InDelta(t, expectHeading, delta.Heading, 1e-12)
}
