package base

import "github.com/robomotive/diffbase.go/pkg/geo"

// PoseFromWheelDeltas computes the incremental planar pose change for
// a pair of wheel angular deltas (in rad), assuming constant
// curvature over the interval. The result is expressed in the robot's
// local frame, so the lateral component is always zero: the robot
// moves along its own forward axis while the heading changes.
func (g Geometry) PoseFromWheelDeltas(dLeft, dRight float64) geo.Pose2D {
	ds := g.WheelRadius * (dLeft + dRight) / 2.0
	dh := g.WheelRadius * (dRight - dLeft) / g.AxleTrack
	return geo.Pose2D{X: ds, Heading: dh}
}
