package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoseFromWheelDeltas(t *testing.T) {
	g := Geometry{AxleTrack: 0.5, WheelRadius: 0.1, TickToRad: 0.001}

	testCases := []struct {
		name          string
		dLeft, dRight float64
		expectX       float64
		expectHeading float64
	}{
		{"at rest", 0, 0, 0, 0},
		{"straight", 1.0, 1.0, 0.1, 0},
		{"straight reverse", -1.0, -1.0, -0.1, 0},
		{"pivot left", -1.0, 1.0, 0, 0.4},
		{"pivot right", 1.0, -1.0, 0, -0.4},
		{"arc", 0.5, 1.0, 0.075, 0.1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			delta := g.PoseFromWheelDeltas(tc.dLeft, tc.dRight)
			require.InDelta(t, tc.expectX, delta.X, 1e-12)
			require.Zero(t, delta.Y)
			require.InDelta(t, tc.expectHeading, delta.Heading, 1e-12)
		})
	}
}
