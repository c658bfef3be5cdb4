package base

import (
	"sync"

	"github.com/robomotive/diffbase.go/pkg/geo"
)

// Odometer integrates raw encoder and timestamp samples from the base
// firmware into cumulative wheel state and per-sample pose deltas.
//
// Encoder ticks and the firmware timestamp are 16-bit counters that
// wrap independently. Deltas are recovered by reinterpreting the
// 16-bit wraparound difference as a signed value, which is correct as
// long as the true delta magnitude stays below 2^15 between
// consecutive samples. Feedback must therefore arrive faster than
// half a counter rollover; a larger jump is silently misread with the
// wrong sign and magnitude.
type Odometer struct {
	geom Geometry

	lock sync.Mutex

	// one-shot latches: the first sample per wheel only establishes a
	// baseline. Kept on the instance so independent bases never share
	// initialization state.
	initLeft  bool
	initRight bool

	lastTickLeft  uint16
	lastTickRight uint16

	lastTimestamp uint16
	// lastElapsed is the interval between the last two distinct
	// timestamps, in s. Zero until two distinct timestamps have been
	// seen; stale while the timestamp is not advancing.
	lastElapsed float64

	angleLeft  float64 // rad, cumulative, never wraps
	angleRight float64 // rad, cumulative, never wraps
	rateLeft   float64 // rad/s, holds last computed value
	rateRight  float64 // rad/s, holds last computed value
}

// NewOdometer creates an Odometer for the given base geometry.
func NewOdometer(geom Geometry) *Odometer {
	return &Odometer{geom: geom}
}

// Update consumes one firmware feedback sample and returns the
// incremental pose delta (m, m, rad) and pose rate (m/s, m/s, rad/s)
// in the robot's local frame.
//
// When the timestamp has not advanced since the previous sample, the
// stored interval and wheel velocities are left untouched rather than
// zeroed, and the returned rates are computed against the stale
// interval. The original firmware driver behaves this way and the
// behavior is preserved on purpose; see the suspicious-velocity note
// in the package tests before changing it. Before the first interval
// is known the rates are meaningless (division by zero).
func (o *Odometer) Update(timestamp, leftTick, rightTick uint16) (delta, rate geo.Pose2D) {
	o.lock.Lock()
	defer o.lock.Unlock()

	if !o.initLeft {
		o.lastTickLeft = leftTick
		o.initLeft = true
	}
	diffLeft := float64(int16(leftTick - o.lastTickLeft))
	o.lastTickLeft = leftTick

	if !o.initRight {
		o.lastTickRight = rightTick
		o.initRight = true
	}
	diffRight := float64(int16(rightTick - o.lastTickRight))
	o.lastTickRight = rightTick

	dLeft := o.geom.TickToRad * diffLeft
	dRight := o.geom.TickToRad * diffRight
	o.angleLeft += dLeft
	o.angleRight += dRight

	delta = o.geom.PoseFromWheelDeltas(dLeft, dRight)

	if timestamp != o.lastTimestamp {
		o.lastElapsed = float64(int16(timestamp-o.lastTimestamp)) / 1000.0
		o.lastTimestamp = timestamp
		o.rateLeft = dLeft / o.lastElapsed
		o.rateRight = dRight / o.lastElapsed
	}

	rate = delta.Div(o.lastElapsed)
	return
}

// Reset zeroes the cumulative wheel angles and velocities. Tick and
// timestamp baselines are kept, so the next Update still integrates
// relative to the previous raw sample instead of re-baselining.
func (o *Odometer) Reset() {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.angleLeft = 0
	o.angleRight = 0
	o.rateLeft = 0
	o.rateRight = 0
}

// WheelJointState returns a consistent snapshot of the cumulative
// wheel angles (rad) and angular velocities (rad/s).
func (o *Odometer) WheelJointState() (angleLeft, rateLeft, angleRight, rateRight float64) {
	o.lock.Lock()
	defer o.lock.Unlock()
	return o.angleLeft, o.rateLeft, o.angleRight, o.rateRight
}
