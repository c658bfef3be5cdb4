package base

import "fmt"

// Geometry captures the fixed physical constants of a differential
// drive base. Values are resolved at construction time and never
// change afterwards.
type Geometry struct {
	// AxleTrack is the lateral distance between the driven wheels, in m.
	AxleTrack float64 `yaml:"axle_track"`
	// WheelRadius is the driven wheel radius, in m.
	WheelRadius float64 `yaml:"wheel_radius"`
	// TickToRad converts one encoder tick to wheel rotation, in rad.
	TickToRad float64 `yaml:"tick_to_rad"`
}

// DefaultGeometry matches the stock base firmware.
var DefaultGeometry = Geometry{
	AxleTrack:   0.485,
	WheelRadius: 0.205,
	TickToRad:   0.00071674029,
}

// Validate checks the constants are usable.
func (g Geometry) Validate() error {
	if g.AxleTrack <= 0 {
		return fmt.Errorf("axle_track must be positive: %v", g.AxleTrack)
	}
	if g.WheelRadius <= 0 {
		return fmt.Errorf("wheel_radius must be positive: %v", g.WheelRadius)
	}
	if g.TickToRad <= 0 {
		return fmt.Errorf("tick_to_rad must be positive: %v", g.TickToRad)
	}
	return nil
}
