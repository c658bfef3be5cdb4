package base

import (
	"math"
	"sync"
)

const (
	// linearDeadband suppresses small forward-speed requests, which
	// combined with rotation produce oversized control output and
	// make the base judder. Requests below it never move the base
	// forward anyway.
	linearDeadband = 0.1 // m/s

	// angularEpsilon below which a request counts as straight-line.
	angularEpsilon = 1e-4 // rad/s

	// minTurnRadius keeps a commanded turn away from the firmware's
	// division-by-near-zero interpretation. Radius 0 is reserved as
	// the straight-line sentinel.
	minTurnRadius = 1.0 // mm

	// minPivotSpeed is the slowest in-place turn the actuator
	// reliably executes.
	minPivotSpeed = 50.0 // mm/s
)

// Commander converts Cartesian motion requests into the (speed,
// radius) representation native to the base firmware, and stores the
// last command for the transport layer to pick up at its own cadence.
type Commander struct {
	geom Geometry

	lock sync.Mutex

	pointLinear  float64 // m/s, last Cartesian request
	pointAngular float64 // rad/s, last Cartesian request

	speed  float64 // mm/s, last computed firmware command
	radius float64 // mm, last computed firmware command
}

// NewCommander creates a Commander for the given base geometry.
func NewCommander(geom Geometry) *Commander {
	return &Commander{geom: geom}
}

// SetPointVelocity stores the Cartesian request verbatim, with no
// conversion or validation. It does not affect the firmware command;
// use ComputeCommand for that.
func (c *Commander) SetPointVelocity(linear, angular float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pointLinear = linear
	c.pointAngular = angular
}

// PointVelocity returns the last stored Cartesian request
// (m/s, rad/s).
func (c *Commander) PointVelocity() (linear, angular float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.pointLinear, c.pointAngular
}

// ComputeCommand converts a Cartesian request (linear m/s, angular
// rad/s) into the firmware (speed mm/s, radius mm) pair and stores it.
// Total over its inputs; degenerate requests fall into one of three
// mutually exclusive cases below.
func (c *Commander) ComputeCommand(linear, angular float64) {
	vx := linear
	if math.Abs(vx) < linearDeadband {
		vx = 0.0
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	// straight line: radius 0 is the firmware's "no turn" sentinel
	// and must never be emitted for any other case.
	if math.Abs(angular) < angularEpsilon {
		c.radius = 0.0
		c.speed = 1000.0 * vx
		return
	}

	radius := vx * 1000.0 / angular

	// in-place rotation, or a turn too tight for the firmware to
	// interpret: command the tangential wheel speed for a pure
	// rotation and force the minimum-radius sentinel.
	if math.Abs(vx) < angularEpsilon || math.Abs(radius) <= minTurnRadius {
		speed := 1000.0 * c.geom.AxleTrack * angular / 2.0
		if math.Abs(speed) < minPivotSpeed {
			if speed > 0.0 {
				speed = minPivotSpeed
			} else {
				speed = -minPivotSpeed
			}
		}
		c.speed = speed
		c.radius = minTurnRadius
		return
	}

	// moving arc: offset the nominal radius by half the axle track
	// toward the outer wheel, then scale by the angular rate.
	if radius > 0.0 {
		c.speed = (radius + 1000.0*c.geom.AxleTrack/2.0) * angular
	} else {
		c.speed = (radius - 1000.0*c.geom.AxleTrack/2.0) * angular
	}
	c.radius = radius
}

// SetCommand stores a firmware-native (speed mm/s, radius mm) pair
// directly, bypassing Cartesian conversion. Values are kept as given;
// saturation happens on read.
func (c *Commander) SetCommand(speed, radius float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.speed = speed
	c.radius = radius
}

// Command returns the last computed firmware command with each
// component independently saturated to the signed 16-bit range the
// wire format carries. Out-of-range values clamp, never wrap.
func (c *Commander) Command() (speed, radius int16) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return bound(c.speed), bound(c.radius)
}

func bound(value float64) int16 {
	switch {
	case math.IsNaN(value):
		// int16(NaN) is implementation-defined, so pin it.
		return 0
	case value > math.MaxInt16:
		return math.MaxInt16
	case value < math.MinInt16:
		return math.MinInt16
	}
	return int16(value)
}
