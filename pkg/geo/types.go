package geo

// Pose2D is a planar pose, pose delta or pose rate in the robot's
// local frame: X/Y in meters (or m/s), Heading in radians (or rad/s).
type Pose2D struct {
	X       float64
	Y       float64
	Heading float64
}

// Add is a helper to add Pose2D componentwise.
func (p Pose2D) Add(p1 Pose2D) Pose2D {
	return Pose2D{X: p.X + p1.X, Y: p.Y + p1.Y, Heading: p.Heading + p1.Heading}
}

// Div divides every component by t. Used to turn a pose delta into a
// pose rate; t is not checked against zero on purpose, the caller
// owns that hazard.
func (p Pose2D) Div(t float64) Pose2D {
	return Pose2D{X: p.X / t, Y: p.Y / t, Heading: p.Heading / t}
}
